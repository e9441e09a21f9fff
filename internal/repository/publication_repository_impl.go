package repository

import (
	"errors"

	"drug-insights-hub/internal/domain/entity"
	domainRepo "drug-insights-hub/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type publicationRepository struct{}

func NewPublicationRepository() domainRepo.PublicationRepository {
	return &publicationRepository{}
}

func (r *publicationRepository) Create(db *gorm.DB, publication *entity.Publication) error {
	return db.Create(publication).Error
}

func (r *publicationRepository) FindByID(db *gorm.DB, id uint) (*entity.Publication, error) {
	var publication entity.Publication
	err := db.Preload("Affiliation").Preload("Authors").Preload("Trials").
		Where("id = ?", id).First(&publication).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &publication, nil
}

func (r *publicationRepository) FindByAffiliationID(db *gorm.DB, affiliationID uint, limit, offset int) ([]entity.Publication, error) {
	var publications []entity.Publication
	err := db.Where("affiliation_id = ?", affiliationID).
		Order("title ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&publications).Error
	if err != nil {
		return nil, err
	}
	return publications, nil
}

func (r *publicationRepository) CountByAffiliationID(db *gorm.DB, affiliationID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Publication{}).Where("affiliation_id = ?", affiliationID).Count(&count).Error
	return count, err
}

func (r *publicationRepository) Update(db *gorm.DB, publication *entity.Publication) error {
	return db.Omit(clause.Associations).Save(publication).Error
}

func (r *publicationRepository) ReplaceAuthors(db *gorm.DB, publication *entity.Publication, authors []entity.User) error {
	return db.Model(publication).Association("Authors").Replace(authors)
}

func (r *publicationRepository) ReplaceTrials(db *gorm.DB, publication *entity.Publication, trials []entity.ClinicalTrial) error {
	return db.Model(publication).Association("Trials").Replace(trials)
}

// Delete removes the publication together with its author and trial link rows.
func (r *publicationRepository) Delete(db *gorm.DB, publication *entity.Publication) error {
	return db.Select(clause.Associations).Delete(publication).Error
}
