package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateProfileRequest struct {
	Bio            string `json:"bio" validate:"omitempty"`
	Interests      string `json:"interests" validate:"omitempty"`
	Specialization string `json:"specialization" validate:"omitempty,max=50"`
	AffiliationID  *uint  `json:"affiliation_id" validate:"omitempty"`
}

// Response DTOs

type ProfileResponse struct {
	UserID         uuid.UUID            `json:"user_id"`
	Bio            string               `json:"bio,omitempty"`
	Interests      string               `json:"interests,omitempty"`
	Specialization string               `json:"specialization"`
	Affiliation    *AffiliationResponse `json:"affiliation,omitempty"`
}
