package dto

// Request DTOs

type CreateAffiliationRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Location    string `json:"location" validate:"omitempty,max=150"`
	Description string `json:"description" validate:"omitempty"`
	Website     string `json:"website" validate:"omitempty,url,max=200"`
}

type UpdateAffiliationRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Location    string `json:"location" validate:"omitempty,max=150"`
	Description string `json:"description" validate:"omitempty"`
	Website     string `json:"website" validate:"omitempty,url,max=200"`
}

// Response DTOs

type AffiliationResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

type AffiliationListResponse struct {
	Affiliations []AffiliationResponse `json:"affiliations"`
	Total        int                   `json:"total"`
}
