package repository

import (
	"errors"

	"drug-insights-hub/internal/domain/entity"
	domainRepo "drug-insights-hub/internal/domain/repository"

	"gorm.io/gorm"
)

type affiliationRepository struct{}

func NewAffiliationRepository() domainRepo.AffiliationRepository {
	return &affiliationRepository{}
}

func (r *affiliationRepository) Create(db *gorm.DB, affiliation *entity.Affiliation) error {
	return db.Create(affiliation).Error
}

func (r *affiliationRepository) FindByID(db *gorm.DB, id uint) (*entity.Affiliation, error) {
	var affiliation entity.Affiliation
	err := db.Where("id = ?", id).First(&affiliation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &affiliation, nil
}

func (r *affiliationRepository) FindAll(db *gorm.DB) ([]entity.Affiliation, error) {
	var affiliations []entity.Affiliation
	err := db.Order("name ASC").Find(&affiliations).Error
	if err != nil {
		return nil, err
	}
	return affiliations, nil
}

func (r *affiliationRepository) Update(db *gorm.DB, affiliation *entity.Affiliation) error {
	return db.Omit("Drugs", "ClinicalTrials", "Publications").Save(affiliation).Error
}

func (r *affiliationRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Affiliation{})
	return affected.RowsAffected, affected.Error
}
