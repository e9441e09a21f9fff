package entity

// DrugType classifies a drug by its purpose
type DrugType string

const (
	DrugTypeTherapeutic         DrugType = "Therapeutic"
	DrugTypeExperimental        DrugType = "Experimental"
	DrugTypePreventive          DrugType = "Preventive"
	DrugTypeDiagnostic          DrugType = "Diagnostic"
	DrugTypePalliative          DrugType = "Palliative"
	DrugTypeCombination         DrugType = "Combination"
	DrugTypeOTC                 DrugType = "Over-the-Counter (OTC)"
	DrugTypeGeneric             DrugType = "Generic"
	DrugTypeBiological          DrugType = "Biological"
	DrugTypeOrphan              DrugType = "Orphan"
	DrugTypeHerbal              DrugType = "Herbal/Alternative"
	DrugTypeRadiopharmaceutical DrugType = "Radiopharmaceutical"
)

// DrugTypes lists every accepted drug type value
var DrugTypes = []DrugType{
	DrugTypeTherapeutic,
	DrugTypeExperimental,
	DrugTypePreventive,
	DrugTypeDiagnostic,
	DrugTypePalliative,
	DrugTypeCombination,
	DrugTypeOTC,
	DrugTypeGeneric,
	DrugTypeBiological,
	DrugTypeOrphan,
	DrugTypeHerbal,
	DrugTypeRadiopharmaceutical,
}

// IsValid checks membership in the fixed drug type vocabulary
func (t DrugType) IsValid() bool {
	for _, v := range DrugTypes {
		if t == v {
			return true
		}
	}
	return false
}

// DevelopmentStatus tracks where a drug sits in the development pipeline.
// Clinical trial phases reuse the same vocabulary.
type DevelopmentStatus string

const (
	StatusPreclinical DevelopmentStatus = "Preclinical"
	StatusPhaseI      DevelopmentStatus = "Phase I"
	StatusPhaseII     DevelopmentStatus = "Phase II"
	StatusPhaseIII    DevelopmentStatus = "Phase III"
	StatusApproved    DevelopmentStatus = "Approved"
)

// DevelopmentStatuses lists every accepted development status value
var DevelopmentStatuses = []DevelopmentStatus{
	StatusPreclinical,
	StatusPhaseI,
	StatusPhaseII,
	StatusPhaseIII,
	StatusApproved,
}

// IsValid checks membership in the fixed development status vocabulary
func (s DevelopmentStatus) IsValid() bool {
	for _, v := range DevelopmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Drug represents a pharmaceutical compound owned by an affiliation.
// The owning affiliation is stamped at creation and never editable afterwards.
type Drug struct {
	ID                              uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	ProprietaryName                 *string           `gorm:"type:varchar(50);uniqueIndex" json:"proprietary_name,omitempty"`
	InternationalNonProprietaryName string            `gorm:"type:varchar(50);not null" json:"international_non_proprietary_name"`
	DrugType                        *DrugType         `gorm:"type:varchar(30)" json:"drug_type,omitempty"`
	DevelopmentStatus               DevelopmentStatus `gorm:"type:varchar(30);not null;default:'Preclinical'" json:"development_status"`
	Description                     string            `gorm:"type:text" json:"description,omitempty"`
	AffiliationID                   uint              `gorm:"not null;index" json:"affiliation_id"`

	// Relationships
	Affiliation    Affiliation     `gorm:"foreignKey:AffiliationID" json:"affiliation,omitempty"`
	ClinicalTrials []ClinicalTrial `gorm:"foreignKey:DrugID" json:"clinical_trials,omitempty"`
}

func (Drug) TableName() string {
	return "drugs"
}

// OwningAffiliationID implements policy.AffiliationOwned
func (d *Drug) OwningAffiliationID() uint {
	return d.AffiliationID
}
