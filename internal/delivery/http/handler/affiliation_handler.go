package handler

import (
	"encoding/json"
	"net/http"

	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/delivery/http/middleware"
	"drug-insights-hub/internal/usecase"
	"drug-insights-hub/pkg/response"
	"drug-insights-hub/pkg/validator"
)

type AffiliationHandler struct {
	affiliationUsecase usecase.AffiliationUsecase
	validator          *validator.CustomValidator
}

func NewAffiliationHandler(affiliationUsecase usecase.AffiliationUsecase, validator *validator.CustomValidator) *AffiliationHandler {
	return &AffiliationHandler{
		affiliationUsecase: affiliationUsecase,
		validator:          validator,
	}
}

func (h *AffiliationHandler) CreateAffiliation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAffiliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	affiliation, err := h.affiliationUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAffiliationNameTaken:
			response.Conflict(w, "Affiliation name already taken")
		default:
			response.InternalServerError(w, "Failed to create affiliation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Affiliation created successfully", affiliation)
}

func (h *AffiliationHandler) GetAffiliation(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid affiliation ID", nil)
		return
	}

	affiliation, err := h.affiliationUsecase.GetByID(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAffiliationNotFound {
			response.NotFound(w, "Affiliation not found")
			return
		}
		response.InternalServerError(w, "Failed to get affiliation")
		return
	}

	response.Success(w, http.StatusOK, "Affiliation retrieved successfully", affiliation)
}

func (h *AffiliationHandler) GetAllAffiliations(w http.ResponseWriter, r *http.Request) {
	affiliations, err := h.affiliationUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list affiliations")
		return
	}

	response.Success(w, http.StatusOK, "Affiliations retrieved successfully", affiliations)
}

func (h *AffiliationHandler) UpdateAffiliation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid affiliation ID", nil)
		return
	}

	var req dto.UpdateAffiliationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	affiliation, err := h.affiliationUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAffiliationNotFound:
			response.NotFound(w, "Affiliation not found")
		case usecase.ErrAffiliationNameTaken:
			response.Conflict(w, "Affiliation name already taken")
		default:
			response.InternalServerError(w, "Failed to update affiliation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Affiliation updated successfully", affiliation)
}

func (h *AffiliationHandler) DeleteAffiliation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseIDVar(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid affiliation ID", nil)
		return
	}

	if err := h.affiliationUsecase.Delete(r.Context(), userID, id); err != nil {
		switch err {
		case usecase.ErrAffiliationNotFound:
			response.NotFound(w, "Affiliation not found")
		case usecase.ErrAffiliationInUse:
			response.Conflict(w, "Affiliation still has members or research entities")
		default:
			response.InternalServerError(w, "Failed to delete affiliation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Affiliation deleted successfully", nil)
}
