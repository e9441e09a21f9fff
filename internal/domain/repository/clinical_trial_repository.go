package repository

import (
	"drug-insights-hub/internal/domain/entity"

	"gorm.io/gorm"
)

type ClinicalTrialRepository interface {
	Create(db *gorm.DB, trial *entity.ClinicalTrial) error
	FindByID(db *gorm.DB, id uint) (*entity.ClinicalTrial, error)
	FindByIDs(db *gorm.DB, ids []uint) ([]entity.ClinicalTrial, error)
	FindByAffiliationID(db *gorm.DB, affiliationID uint, limit, offset int) ([]entity.ClinicalTrial, error)
	CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error)
	CountByDrugID(db *gorm.DB, drugID uint) (int64, error)
	Update(db *gorm.DB, trial *entity.ClinicalTrial) error
	ReplaceParticipants(db *gorm.DB, trial *entity.ClinicalTrial, participants []entity.User) error
	Delete(db *gorm.DB, trial *entity.ClinicalTrial) error
}
