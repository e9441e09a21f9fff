package repository

import (
	"drug-insights-hub/internal/domain/entity"

	"gorm.io/gorm"
)

type PublicationRepository interface {
	Create(db *gorm.DB, publication *entity.Publication) error
	FindByID(db *gorm.DB, id uint) (*entity.Publication, error)
	FindByAffiliationID(db *gorm.DB, affiliationID uint, limit, offset int) ([]entity.Publication, error)
	CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error)
	Update(db *gorm.DB, publication *entity.Publication) error
	ReplaceAuthors(db *gorm.DB, publication *entity.Publication, authors []entity.User) error
	ReplaceTrials(db *gorm.DB, publication *entity.Publication, trials []entity.ClinicalTrial) error
	Delete(db *gorm.DB, publication *entity.Publication) error
}
