package converter

import (
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
)

// PublicationToResponse converts a Publication entity to its DTO
func PublicationToResponse(publication *entity.Publication) *dto.PublicationResponse {
	if publication == nil {
		return nil
	}
	response := &dto.PublicationResponse{
		ID:               publication.ID,
		Title:            publication.Title,
		Journal:          publication.Journal,
		PublicationDate:  publication.PublicationDate.Format(dateLayout),
		ModificationDate: publication.ModificationDate.Format(dateLayout),
		AffiliationID:    publication.AffiliationID,
	}
	if publication.Affiliation.ID != 0 {
		response.Affiliation = AffiliationToResponse(&publication.Affiliation)
	}
	if len(publication.Authors) > 0 {
		response.Authors = UsersToSummaries(publication.Authors)
	}
	for _, trial := range publication.Trials {
		response.Trials = append(response.Trials, dto.TrialRef{ID: trial.ID, Title: trial.Title})
	}
	return response
}

// PublicationsToResponses converts a slice of Publication entities to DTOs
func PublicationsToResponses(publications []entity.Publication) []dto.PublicationResponse {
	responses := make([]dto.PublicationResponse, len(publications))
	for i := range publications {
		responses[i] = *PublicationToResponse(&publications[i])
	}
	return responses
}
