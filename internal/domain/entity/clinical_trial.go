package entity

import (
	"errors"
	"time"
)

// ErrTrialDatesOutOfOrder is returned when a trial would be saved with a
// start date after its end date.
var ErrTrialDatesOutOfOrder = errors.New("start date must be before or equal to end date")

// ClinicalTrial represents a trial run by an affiliation on one of its drugs.
// The owning affiliation and the drug reference are stamped at creation and
// never editable afterwards.
type ClinicalTrial struct {
	ID            uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Title         string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"title"`
	Phase         DevelopmentStatus `gorm:"type:varchar(30);not null" json:"phase"`
	StartDate     time.Time         `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time         `gorm:"type:date;not null" json:"end_date"`
	Description   string            `gorm:"type:text" json:"description,omitempty"`
	DrugID        uint              `gorm:"not null;index" json:"drug_id"`
	AffiliationID uint              `gorm:"not null;index" json:"affiliation_id"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Drug         Drug          `gorm:"foreignKey:DrugID" json:"drug,omitempty"`
	Affiliation  Affiliation   `gorm:"foreignKey:AffiliationID" json:"affiliation,omitempty"`
	Participants []User        `gorm:"many2many:clinical_trial_participants" json:"participants,omitempty"`
	Publications []Publication `gorm:"many2many:publication_trials" json:"publications,omitempty"`
}

func (ClinicalTrial) TableName() string {
	return "clinical_trials"
}

// OwningAffiliationID implements policy.AffiliationOwned
func (t *ClinicalTrial) OwningAffiliationID() uint {
	return t.AffiliationID
}

// CheckDates enforces the date-order invariant before every save
func (t *ClinicalTrial) CheckDates() error {
	if !t.StartDate.IsZero() && !t.EndDate.IsZero() && t.StartDate.After(t.EndDate) {
		return ErrTrialDatesOutOfOrder
	}
	return nil
}
