package converter

import (
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
)

// ProfileToResponse converts a UserProfile entity to its DTO
func ProfileToResponse(profile *entity.UserProfile) *dto.ProfileResponse {
	if profile == nil {
		return nil
	}
	response := &dto.ProfileResponse{
		UserID:         profile.UserID,
		Bio:            profile.Bio,
		Interests:      profile.Interests,
		Specialization: string(profile.Specialization),
	}
	if profile.Affiliation != nil {
		response.Affiliation = AffiliationToResponse(profile.Affiliation)
	}
	return response
}
