package repository

import (
	"drug-insights-hub/internal/domain/entity"

	"gorm.io/gorm"
)

type AffiliationRepository interface {
	Create(db *gorm.DB, affiliation *entity.Affiliation) error
	FindByID(db *gorm.DB, id uint) (*entity.Affiliation, error)
	FindAll(db *gorm.DB) ([]entity.Affiliation, error)
	Update(db *gorm.DB, affiliation *entity.Affiliation) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
