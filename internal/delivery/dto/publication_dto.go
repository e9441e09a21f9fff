package dto

import "github.com/google/uuid"

// Request DTOs

type CreatePublicationRequest struct {
	Title     string      `json:"title" validate:"required,max=50"`
	Journal   string      `json:"journal" validate:"omitempty,max=30"`
	AuthorIDs []uuid.UUID `json:"author_ids" validate:"omitempty"`
	TrialIDs  []uint      `json:"trial_ids" validate:"omitempty"`
}

// UpdatePublicationRequest excludes the owning affiliation and both
// auto-stamped dates.
type UpdatePublicationRequest struct {
	Title     string      `json:"title" validate:"required,max=50"`
	Journal   string      `json:"journal" validate:"omitempty,max=30"`
	AuthorIDs []uuid.UUID `json:"author_ids" validate:"omitempty"`
	TrialIDs  []uint      `json:"trial_ids" validate:"omitempty"`
}

// Response DTOs

// TrialRef is the lean trial shape embedded in publication responses
type TrialRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type PublicationResponse struct {
	ID               uint                 `json:"id"`
	Title            string               `json:"title"`
	Journal          string               `json:"journal,omitempty"`
	PublicationDate  string               `json:"publication_date"`
	ModificationDate string               `json:"modification_date"`
	AffiliationID    uint                 `json:"affiliation_id"`
	Affiliation      *AffiliationResponse `json:"affiliation,omitempty"`
	Authors          []UserSummary        `json:"authors,omitempty"`
	Trials           []TrialRef           `json:"trials,omitempty"`
	CanModify        bool                 `json:"can_modify"`
}

type PublicationListResponse struct {
	Publications []PublicationResponse `json:"publications"`
	Total        int64                 `json:"total"`
}
