package repository

import (
	"errors"

	"drug-insights-hub/internal/domain/entity"
	domainRepo "drug-insights-hub/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type clinicalTrialRepository struct{}

func NewClinicalTrialRepository() domainRepo.ClinicalTrialRepository {
	return &clinicalTrialRepository{}
}

func (r *clinicalTrialRepository) Create(db *gorm.DB, trial *entity.ClinicalTrial) error {
	return db.Create(trial).Error
}

func (r *clinicalTrialRepository) FindByID(db *gorm.DB, id uint) (*entity.ClinicalTrial, error) {
	var trial entity.ClinicalTrial
	err := db.Preload("Affiliation").Preload("Drug").Preload("Participants").
		Where("id = ?", id).First(&trial).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trial, nil
}

func (r *clinicalTrialRepository) FindByIDs(db *gorm.DB, ids []uint) ([]entity.ClinicalTrial, error) {
	var trials []entity.ClinicalTrial
	if len(ids) == 0 {
		return trials, nil
	}
	err := db.Where("id IN ?", ids).Find(&trials).Error
	if err != nil {
		return nil, err
	}
	return trials, nil
}

func (r *clinicalTrialRepository) FindByAffiliationID(db *gorm.DB, affiliationID uint, limit, offset int) ([]entity.ClinicalTrial, error) {
	var trials []entity.ClinicalTrial
	err := db.Where("affiliation_id = ?", affiliationID).
		Order("title ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&trials).Error
	if err != nil {
		return nil, err
	}
	return trials, nil
}

func (r *clinicalTrialRepository) CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.ClinicalTrial{}).Where("affiliation_id = ?", affiliationID).Count(&count).Error
	return count, err
}

func (r *clinicalTrialRepository) CountByDrugID(db *gorm.DB, drugID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.ClinicalTrial{}).Where("drug_id = ?", drugID).Count(&count).Error
	return count, err
}

func (r *clinicalTrialRepository) Update(db *gorm.DB, trial *entity.ClinicalTrial) error {
	return db.Omit(clause.Associations).Save(trial).Error
}

func (r *clinicalTrialRepository) ReplaceParticipants(db *gorm.DB, trial *entity.ClinicalTrial, participants []entity.User) error {
	return db.Model(trial).Association("Participants").Replace(participants)
}

// Delete removes the trial together with its participant and publication
// link rows.
func (r *clinicalTrialRepository) Delete(db *gorm.DB, trial *entity.ClinicalTrial) error {
	return db.Select(clause.Associations).Delete(trial).Error
}
