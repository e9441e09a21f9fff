package entity

import "github.com/google/uuid"

// Specialization is the professional specialization declared on a profile
type Specialization string

const (
	SpecializationNone                   Specialization = "Not a specialist"
	SpecializationPharmaResearcher       Specialization = "Pharmaceutical Researcher"
	SpecializationTrialInvestigator      Specialization = "Clinical Trial Investigator"
	SpecializationDrugDevScientist       Specialization = "Drug Development Scientist"
	SpecializationRegulatorySpecialist   Specialization = "Regulatory Affairs Specialist"
	SpecializationMedicalWriter          Specialization = "Medical Writer"
	SpecializationHealthcareProfessional Specialization = "Healthcare Professional"
	SpecializationPharmacologist         Specialization = "Pharmacologist"
	SpecializationBiostatistician        Specialization = "Biostatistician"
)

// Specializations lists every accepted specialization value
var Specializations = []Specialization{
	SpecializationNone,
	SpecializationPharmaResearcher,
	SpecializationTrialInvestigator,
	SpecializationDrugDevScientist,
	SpecializationRegulatorySpecialist,
	SpecializationMedicalWriter,
	SpecializationHealthcareProfessional,
	SpecializationPharmacologist,
	SpecializationBiostatistician,
}

// IsValid checks membership in the fixed specialization vocabulary
func (s Specialization) IsValid() bool {
	for _, v := range Specializations {
		if s == v {
			return true
		}
	}
	return false
}

// UserProfile extends a user account with research metadata.
// Created together with the account, exactly one per user.
type UserProfile struct {
	UserID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Bio            string         `gorm:"type:text" json:"bio,omitempty"`
	Interests      string         `gorm:"type:text" json:"interests,omitempty"`
	Specialization Specialization `gorm:"type:varchar(50);not null;default:'Not a specialist'" json:"specialization"`
	AffiliationID  *uint          `gorm:"index" json:"affiliation_id,omitempty"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Affiliation *Affiliation `gorm:"foreignKey:AffiliationID" json:"affiliation,omitempty"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
