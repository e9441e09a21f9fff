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

type ClinicalTrialHandler struct {
	trialUsecase usecase.ClinicalTrialUsecase
}

func NewClinicalTrialHandler(trialUsecase usecase.ClinicalTrialUsecase) *ClinicalTrialHandler {
	return &ClinicalTrialHandler{trialUsecase: trialUsecase}
}

func (h *ClinicalTrialHandler) CreateClinicalTrial(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateClinicalTrialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	trial, err := h.trialUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		var verr *usecase.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationError(w, verr.Fields)
		case err == policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage clinical trials")
		case err == usecase.ErrTrialTitleTaken:
			response.Conflict(w, "Clinical trial title already taken")
		default:
			response.InternalServerError(w, "Failed to create clinical trial")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Clinical trial created successfully", trial)
}

func (h *ClinicalTrialHandler) GetClinicalTrial(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinical trial ID", nil)
		return
	}

	trial, err := h.trialUsecase.GetByID(r.Context(), viewerFromContext(r), id)
	if err != nil {
		if err == usecase.ErrTrialNotFound {
			response.NotFound(w, "Clinical trial not found")
			return
		}
		response.InternalServerError(w, "Failed to get clinical trial")
		return
	}

	response.Success(w, http.StatusOK, "Clinical trial retrieved successfully", trial)
}

func (h *ClinicalTrialHandler) GetMyClinicalTrials(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	trials, meta, err := h.trialUsecase.ListMine(r.Context(), userID, parsePage(r))
	if err != nil {
		if err == policy.ErrUnaffiliated {
			response.Forbidden(w, "An affiliation is required to list clinical trials")
			return
		}
		response.InternalServerError(w, "Failed to list clinical trials")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Clinical trials retrieved successfully", trials, meta)
}

func (h *ClinicalTrialHandler) UpdateClinicalTrial(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinical trial ID", nil)
		return
	}

	var req dto.UpdateClinicalTrialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	trial, err := h.trialUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		var verr *usecase.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ValidationError(w, verr.Fields)
		case err == policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage clinical trials")
		case err == policy.ErrForbidden:
			response.Forbidden(w, "Clinical trial belongs to another affiliation")
		case err == usecase.ErrTrialNotFound:
			response.NotFound(w, "Clinical trial not found")
		case err == usecase.ErrTrialTitleTaken:
			response.Conflict(w, "Clinical trial title already taken")
		default:
			response.InternalServerError(w, "Failed to update clinical trial")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinical trial updated successfully", trial)
}

func (h *ClinicalTrialHandler) DeleteClinicalTrial(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid clinical trial ID", nil)
		return
	}

	if err := h.trialUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case policy.ErrUnaffiliated:
			response.Forbidden(w, "An affiliation is required to manage clinical trials")
		case policy.ErrForbidden:
			response.Forbidden(w, "Clinical trial belongs to another affiliation")
		case usecase.ErrTrialNotFound:
			response.NotFound(w, "Clinical trial not found")
		default:
			response.InternalServerError(w, "Failed to delete clinical trial")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinical trial deleted successfully", nil)
}
