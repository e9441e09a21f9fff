package entity

import "time"

// Publication represents a research paper published by an affiliation.
// The publication date is stamped once at creation; the modification date
// moves on every save. Both are excluded from the editable field set.
type Publication struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"title"`
	Journal          string    `gorm:"type:varchar(30)" json:"journal,omitempty"`
	PublicationDate  time.Time `gorm:"type:date;autoCreateTime" json:"publication_date"`
	ModificationDate time.Time `gorm:"type:date;autoUpdateTime" json:"modification_date"`
	AffiliationID    uint      `gorm:"not null;index" json:"affiliation_id"`

	// Relationships
	Affiliation Affiliation     `gorm:"foreignKey:AffiliationID" json:"affiliation,omitempty"`
	Authors     []User          `gorm:"many2many:publication_authors" json:"authors,omitempty"`
	Trials      []ClinicalTrial `gorm:"many2many:publication_trials" json:"trials,omitempty"`
}

func (Publication) TableName() string {
	return "publications"
}

// OwningAffiliationID implements policy.AffiliationOwned
func (p *Publication) OwningAffiliationID() uint {
	return p.AffiliationID
}
