package dto

import "github.com/google/uuid"

// Request DTOs

type CreateClinicalTrialRequest struct {
	Title          string      `json:"title" validate:"required,max=50"`
	Phase          string      `json:"phase" validate:"required,max=30"`
	StartDate      string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string      `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description    string      `json:"description" validate:"omitempty"`
	DrugID         uint        `json:"drug_id" validate:"required"`
	ParticipantIDs []uuid.UUID `json:"participant_ids" validate:"omitempty"`
}

// UpdateClinicalTrialRequest excludes the owning affiliation and the drug
// reference; both are fixed at creation.
type UpdateClinicalTrialRequest struct {
	Title          string      `json:"title" validate:"required,max=50"`
	Phase          string      `json:"phase" validate:"required,max=30"`
	StartDate      string      `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string      `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description    string      `json:"description" validate:"omitempty"`
	ParticipantIDs []uuid.UUID `json:"participant_ids" validate:"omitempty"`
}

// Response DTOs

type ClinicalTrialResponse struct {
	ID            uint                 `json:"id"`
	Title         string               `json:"title"`
	Phase         string               `json:"phase"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	Description   string               `json:"description,omitempty"`
	DrugID        uint                 `json:"drug_id"`
	Drug          *DrugResponse        `json:"drug,omitempty"`
	AffiliationID uint                 `json:"affiliation_id"`
	Affiliation   *AffiliationResponse `json:"affiliation,omitempty"`
	Participants  []UserSummary        `json:"participants,omitempty"`
	CanModify     bool                 `json:"can_modify"`
}

type ClinicalTrialListResponse struct {
	ClinicalTrials []ClinicalTrialResponse `json:"clinical_trials"`
	Total          int64                   `json:"total"`
}
