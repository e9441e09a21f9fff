package repository

import (
	"errors"

	"drug-insights-hub/internal/domain/entity"
	domainRepo "drug-insights-hub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userProfileRepository struct{}

func NewUserProfileRepository() domainRepo.UserProfileRepository {
	return &userProfileRepository{}
}

func (r *userProfileRepository) Create(db *gorm.DB, profile *entity.UserProfile) error {
	return db.Create(profile).Error
}

func (r *userProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	err := db.Preload("Affiliation").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Update(db *gorm.DB, profile *entity.UserProfile) error {
	return db.Omit("User", "Affiliation").Save(profile).Error
}

func (r *userProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	affected := db.Where("user_id = ?", userID).Delete(&entity.UserProfile{})
	return affected.RowsAffected, affected.Error
}

func (r *userProfileRepository) CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.UserProfile{}).Where("affiliation_id = ?", affiliationID).Count(&count).Error
	return count, err
}
