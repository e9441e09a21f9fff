package converter

import (
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
)

// DrugToResponse converts a Drug entity to its DTO
func DrugToResponse(drug *entity.Drug) *dto.DrugResponse {
	if drug == nil {
		return nil
	}
	response := &dto.DrugResponse{
		ID:                              drug.ID,
		ProprietaryName:                 drug.ProprietaryName,
		InternationalNonProprietaryName: drug.InternationalNonProprietaryName,
		DevelopmentStatus:               string(drug.DevelopmentStatus),
		Description:                     drug.Description,
		AffiliationID:                   drug.AffiliationID,
	}
	if drug.DrugType != nil {
		response.DrugType = string(*drug.DrugType)
	}
	if drug.Affiliation.ID != 0 {
		response.Affiliation = AffiliationToResponse(&drug.Affiliation)
	}
	return response
}

// DrugsToResponses converts a slice of Drug entities to DTOs
func DrugsToResponses(drugs []entity.Drug) []dto.DrugResponse {
	responses := make([]dto.DrugResponse, len(drugs))
	for i := range drugs {
		responses[i] = *DrugToResponse(&drugs[i])
	}
	return responses
}
