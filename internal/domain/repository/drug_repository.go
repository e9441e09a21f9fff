package repository

import (
	"drug-insights-hub/internal/domain/entity"

	"gorm.io/gorm"
)

type DrugRepository interface {
	Create(db *gorm.DB, drug *entity.Drug) error
	FindByID(db *gorm.DB, id uint) (*entity.Drug, error)
	// FindByAffiliationID returns one page of the affiliation's drugs ordered
	// by proprietary name with id as tiebreak.
	FindByAffiliationID(db *gorm.DB, affiliationID uint, limit, offset int) ([]entity.Drug, error)
	CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error)
	Update(db *gorm.DB, drug *entity.Drug) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
