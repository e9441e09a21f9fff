package converter

import (
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
)

// UserToResponse converts a User entity to its DTO, including the profile
// when it is loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.Profile != nil {
		response.Profile = ProfileToResponse(user.Profile)
	}
	return response
}

// UsersToSummaries converts users to the lean shape used in participant and
// author lists
func UsersToSummaries(users []entity.User) []dto.UserSummary {
	if len(users) == 0 {
		return nil
	}
	summaries := make([]dto.UserSummary, len(users))
	for i, user := range users {
		summaries[i] = dto.UserSummary{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		}
	}
	return summaries
}
