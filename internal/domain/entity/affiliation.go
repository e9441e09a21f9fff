package entity

// Affiliation represents a research institution (lab, company, university)
// that owns drugs, clinical trials and publications. Accounts may optionally
// belong to one affiliation through their profile.
type Affiliation struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Location    string `gorm:"type:varchar(150)" json:"location,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Website     string `gorm:"type:varchar(200)" json:"website,omitempty"`

	// Relationships
	Drugs          []Drug          `gorm:"foreignKey:AffiliationID" json:"drugs,omitempty"`
	ClinicalTrials []ClinicalTrial `gorm:"foreignKey:AffiliationID" json:"clinical_trials,omitempty"`
	Publications   []Publication   `gorm:"foreignKey:AffiliationID" json:"publications,omitempty"`
}

func (Affiliation) TableName() string {
	return "affiliations"
}
