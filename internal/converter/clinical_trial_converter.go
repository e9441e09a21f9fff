package converter

import (
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ClinicalTrialToResponse converts a ClinicalTrial entity to its DTO
func ClinicalTrialToResponse(trial *entity.ClinicalTrial) *dto.ClinicalTrialResponse {
	if trial == nil {
		return nil
	}
	response := &dto.ClinicalTrialResponse{
		ID:            trial.ID,
		Title:         trial.Title,
		Phase:         string(trial.Phase),
		StartDate:     trial.StartDate.Format(dateLayout),
		EndDate:       trial.EndDate.Format(dateLayout),
		Description:   trial.Description,
		DrugID:        trial.DrugID,
		AffiliationID: trial.AffiliationID,
	}
	if trial.Drug.ID != 0 {
		response.Drug = DrugToResponse(&trial.Drug)
	}
	if trial.Affiliation.ID != 0 {
		response.Affiliation = AffiliationToResponse(&trial.Affiliation)
	}
	if len(trial.Participants) > 0 {
		response.Participants = UsersToSummaries(trial.Participants)
	}
	return response
}

// ClinicalTrialsToResponses converts a slice of ClinicalTrial entities to DTOs
func ClinicalTrialsToResponses(trials []entity.ClinicalTrial) []dto.ClinicalTrialResponse {
	responses := make([]dto.ClinicalTrialResponse, len(trials))
	for i := range trials {
		responses[i] = *ClinicalTrialToResponse(&trials[i])
	}
	return responses
}
