package dto

// Request DTOs

type CreateDrugRequest struct {
	ProprietaryName                 *string `json:"proprietary_name" validate:"omitempty,max=50"`
	InternationalNonProprietaryName string  `json:"international_non_proprietary_name" validate:"required,max=50"`
	DrugType                        string  `json:"drug_type" validate:"omitempty,max=30"`
	DevelopmentStatus               string  `json:"development_status" validate:"omitempty,max=30"`
	Description                     string  `json:"description" validate:"omitempty"`
}

// UpdateDrugRequest carries the editable field set; the owning affiliation is
// deliberately absent.
type UpdateDrugRequest struct {
	ProprietaryName                 *string `json:"proprietary_name" validate:"omitempty,max=50"`
	InternationalNonProprietaryName string  `json:"international_non_proprietary_name" validate:"required,max=50"`
	DrugType                        string  `json:"drug_type" validate:"omitempty,max=30"`
	DevelopmentStatus               string  `json:"development_status" validate:"omitempty,max=30"`
	Description                     string  `json:"description" validate:"omitempty"`
}

// Response DTOs

type DrugResponse struct {
	ID                              uint                 `json:"id"`
	ProprietaryName                 *string              `json:"proprietary_name,omitempty"`
	InternationalNonProprietaryName string               `json:"international_non_proprietary_name"`
	DrugType                        string               `json:"drug_type,omitempty"`
	DevelopmentStatus               string               `json:"development_status"`
	Description                     string               `json:"description,omitempty"`
	AffiliationID                   uint                 `json:"affiliation_id"`
	Affiliation                     *AffiliationResponse `json:"affiliation,omitempty"`
	CanModify                       bool                 `json:"can_modify"`
}

type DrugListResponse struct {
	Drugs []DrugResponse `json:"drugs"`
	Total int64          `json:"total"`
}
