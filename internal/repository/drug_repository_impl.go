package repository

import (
	"errors"

	"drug-insights-hub/internal/domain/entity"
	domainRepo "drug-insights-hub/internal/domain/repository"

	"gorm.io/gorm"
)

type drugRepository struct{}

func NewDrugRepository() domainRepo.DrugRepository {
	return &drugRepository{}
}

func (r *drugRepository) Create(db *gorm.DB, drug *entity.Drug) error {
	return db.Create(drug).Error
}

func (r *drugRepository) FindByID(db *gorm.DB, id uint) (*entity.Drug, error) {
	var drug entity.Drug
	err := db.Preload("Affiliation").Where("id = ?", id).First(&drug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &drug, nil
}

func (r *drugRepository) FindByAffiliationID(db *gorm.DB, affiliationID uint, limit, offset int) ([]entity.Drug, error) {
	var drugs []entity.Drug
	err := db.Where("affiliation_id = ?", affiliationID).
		Order("proprietary_name ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&drugs).Error
	if err != nil {
		return nil, err
	}
	return drugs, nil
}

func (r *drugRepository) CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Drug{}).Where("affiliation_id = ?", affiliationID).Count(&count).Error
	return count, err
}

func (r *drugRepository) Update(db *gorm.DB, drug *entity.Drug) error {
	return db.Omit("Affiliation", "ClinicalTrials").Save(drug).Error
}

func (r *drugRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Drug{})
	return affected.RowsAffected, affected.Error
}
