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

// DrugHandler serves the drug lifecycle. Payload validation runs inside the
// usecase so the affiliation check can precede it.
type DrugHandler struct {
	drugUsecase usecase.DrugUsecase
}

func NewDrugHandler(drugUsecase usecase.DrugUsecase) *DrugHandler {
	return &DrugHandler{drugUsecase: drugUsecase}
}

func (h *DrugHandler) CreateDrug(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	drug, err := h.drugUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		var verr *usecase.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationError(w, verr.Fields)
		case err == policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage drugs")
		case err == usecase.ErrDrugNameTaken:
			response.Conflict(w, "Proprietary name already taken")
		default:
			response.InternalServerError(w, "Failed to create drug")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Drug created successfully", drug)
}

func (h *DrugHandler) GetDrug(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return
	}

	drug, err := h.drugUsecase.GetByID(r.Context(), viewerFromContext(r), id)
	if err != nil {
		if err == usecase.ErrDrugNotFound {
			response.NotFound(w, "Drug not found")
			return
		}
		response.InternalServerError(w, "Failed to get drug")
		return
	}

	response.Success(w, http.StatusOK, "Drug retrieved successfully", drug)
}

func (h *DrugHandler) GetMyDrugs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	drugs, meta, err := h.drugUsecase.ListMine(r.Context(), userID, parsePage(r))
	if err != nil {
		if err == policy.ErrUnaffiliated {
			response.Forbidden(w, "An affiliation is required to list drugs")
			return
		}
		response.InternalServerError(w, "Failed to list drugs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Drugs retrieved successfully", drugs, meta)
}

func (h *DrugHandler) UpdateDrug(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return
	}

	var req dto.UpdateDrugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	drug, err := h.drugUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		var verr *usecase.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationError(w, verr.Fields)
		case err == policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage drugs")
		case err == policy.ErrForbidden:
			response.Forbidden(w, "Drug belongs to another affiliation")
		case err == usecase.ErrDrugNotFound:
			response.NotFound(w, "Drug not found")
		case err == usecase.ErrDrugNameTaken:
			response.Conflict(w, "Proprietary name already taken")
		default:
			response.InternalServerError(w, "Failed to update drug")
		}
		return
	}

	response.Success(w, http.StatusOK, "Drug updated successfully", drug)
}

func (h *DrugHandler) DeleteDrug(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid drug ID", nil)
		return
	}

	if err := h.drugUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage drugs")
		case policy.ErrForbidden:
			response.Forbidden(w, "Drug belongs to another affiliation")
		case usecase.ErrDrugNotFound:
			response.NotFound(w, "Drug not found")
		case usecase.ErrDrugInUse:
			response.Conflict(w, "Drug is referenced by clinical trials")
		default:
			response.InternalServerError(w, "Failed to delete drug")
		}
		return
	}

	response.Success(w, http.StatusOK, "Drug deleted successfully", nil)
}
