package repository

import (
	"drug-insights-hub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfileRepository interface {
	Create(db *gorm.DB, profile *entity.UserProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error)
	Update(db *gorm.DB, profile *entity.UserProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) (int64, error)
	CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error)
}
