package handler

import (
	"net/http"
	"strconv"

	"drug-insights-hub/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// parseIDVar reads the {id} path variable as an unsigned integer
func parseIDVar(r *http.Request) (uint, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parsePage reads the page query parameter, defaulting to the first page.
// Out-of-range values are clamped later against the actual row count.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// viewerFromContext returns the authenticated viewer's id, or nil for
// anonymous requests behind optional authentication
func viewerFromContext(r *http.Request) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		return &userID
	}
	return nil
}
