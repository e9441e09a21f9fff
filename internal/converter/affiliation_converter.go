package converter

import (
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
)

// AffiliationToResponse converts an Affiliation entity to its DTO
func AffiliationToResponse(affiliation *entity.Affiliation) *dto.AffiliationResponse {
	if affiliation == nil {
		return nil
	}
	return &dto.AffiliationResponse{
		ID:          affiliation.ID,
		Name:        affiliation.Name,
		Location:    affiliation.Location,
		Description: affiliation.Description,
		Website:     affiliation.Website,
	}
}

// AffiliationsToResponses converts a slice of Affiliation entities to DTOs
func AffiliationsToResponses(affiliations []entity.Affiliation) []dto.AffiliationResponse {
	responses := make([]dto.AffiliationResponse, len(affiliations))
	for i := range affiliations {
		responses[i] = *AffiliationToResponse(&affiliations[i])
	}
	return responses
}
