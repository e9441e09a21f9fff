package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/delivery/http/middleware"
	"drug-insights-hub/internal/policy"
	"drug-insights-hub/internal/usecase"
	"drug-insights-hub/pkg/response"
)

type PublicationHandler struct {
	publicationUsecase usecase.PublicationUsecase
}

func NewPublicationHandler(publicationUsecase usecase.PublicationUsecase) *PublicationHandler {
	return &PublicationHandler{publicationUsecase: publicationUsecase}
}

func (h *PublicationHandler) CreatePublication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePublicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	publication, err := h.publicationUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		var verr *usecase.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationError(w, verr.Fields)
		case err == policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage publications")
		case err == usecase.ErrPublicationTitleTaken:
			response.Conflict(w, "Publication title already taken")
		default:
			response.InternalServerError(w, "Failed to create publication")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Publication created successfully", publication)
}

func (h *PublicationHandler) GetPublication(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid publication ID", nil)
		return
	}

	publication, err := h.publicationUsecase.GetByID(r.Context(), viewerFromContext(r), id)
	if err != nil {
		if err == usecase.ErrPublicationNotFound {
			response.NotFound(w, "Publication not found")
			return
		}
		response.InternalServerError(w, "Failed to get publication")
		return
	}

	response.Success(w, http.StatusOK, "Publication retrieved successfully", publication)
}

func (h *PublicationHandler) GetMyPublications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	publications, meta, err := h.publicationUsecase.ListMine(r.Context(), userID, parsePage(r))
	if err != nil {
		if err == policy.ErrUnaffiliated {
			response.Forbidden(w, "An affiliation is required to list publications")
			return
		}
		response.InternalServerError(w, "Failed to list publications")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Publications retrieved successfully", publications, meta)
}

func (h *PublicationHandler) UpdatePublication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid publication ID", nil)
		return
	}

	var req dto.UpdatePublicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	publication, err := h.publicationUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		var verr *usecase.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationError(w, verr.Fields)
		case err == policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage publications")
		case err == policy.ErrForbidden:
			response.Forbidden(w, "Publication belongs to another affiliation")
		case err == usecase.ErrPublicationNotFound:
			response.NotFound(w, "Publication not found")
		case err == usecase.ErrPublicationTitleTaken:
			response.Conflict(w, "Publication title already taken")
		default:
			response.InternalServerError(w, "Failed to update publication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Publication updated successfully", publication)
}

func (h *PublicationHandler) DeletePublication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid publication ID", nil)
		return
	}

	if err := h.publicationUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage publications")
		case policy.ErrForbidden:
			response.Forbidden(w, "Publication belongs to another affiliation")
		case usecase.ErrPublicationNotFound:
			response.NotFound(w, "Publication not found")
		default:
			response.InternalServerError(w, "Failed to delete publication")
		}
		return
	}

	response.Success(w, http.StatusOK, "Publication deleted successfully", nil)
}
