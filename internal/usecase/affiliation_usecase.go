package usecase

import (
	"context"
	"errors"

	"drug-insights-hub/internal/converter"
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/domain/repository"
	"drug-insights-hub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAffiliationNotFound  = errors.New("affiliation not found")
	ErrAffiliationNameTaken = errors.New("affiliation name already taken")
	// ErrAffiliationInUse blocks deletion while members or research entities
	// still reference the affiliation.
	ErrAffiliationInUse = errors.New("affiliation still has members or research entities")
)

type AffiliationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAffiliationRequest) (*dto.AffiliationResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AffiliationResponse, error)
	List(ctx context.Context) (*dto.AffiliationListResponse, error)
	Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateAffiliationRequest) (*dto.AffiliationResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
}

type affiliationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	affiliationRepo repository.AffiliationRepository
	profileRepo     repository.UserProfileRepository
	drugRepo        repository.DrugRepository
	trialRepo       repository.ClinicalTrialRepository
	publicationRepo repository.PublicationRepository
	auditService    service.AuditService
}

func NewAffiliationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	affiliationRepo repository.AffiliationRepository,
	profileRepo repository.UserProfileRepository,
	drugRepo repository.DrugRepository,
	trialRepo repository.ClinicalTrialRepository,
	publicationRepo repository.PublicationRepository,
	auditService service.AuditService,
) AffiliationUsecase {
	return &affiliationUsecase{
		db:              db,
		log:             log,
		affiliationRepo: affiliationRepo,
		profileRepo:     profileRepo,
		drugRepo:        drugRepo,
		trialRepo:       trialRepo,
		publicationRepo: publicationRepo,
		auditService:    auditService,
	}
}

func (u *affiliationUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateAffiliationRequest) (*dto.AffiliationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliation := &entity.Affiliation{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		Website:     req.Website,
	}

	if err := u.affiliationRepo.Create(tx, affiliation); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrAffiliationNameTaken
		}
		u.log.Warnf("Failed to create affiliation: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &userID, entity.AuditActionAffiliationCreate, "affiliation", affiliation.Name, affiliation); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AffiliationToResponse(affiliation), nil
}

func (u *affiliationUsecase) GetByID(ctx context.Context, id uint) (*dto.AffiliationResponse, error) {
	affiliation, err := u.affiliationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find affiliation: %+v", err)
		return nil, err
	}
	if affiliation == nil {
		return nil, ErrAffiliationNotFound
	}

	return converter.AffiliationToResponse(affiliation), nil
}

func (u *affiliationUsecase) List(ctx context.Context) (*dto.AffiliationListResponse, error) {
	affiliations, err := u.affiliationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list affiliations: %+v", err)
		return nil, err
	}

	return &dto.AffiliationListResponse{
		Affiliations: converter.AffiliationsToResponses(affiliations),
		Total:        len(affiliations),
	}, nil
}

func (u *affiliationUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateAffiliationRequest) (*dto.AffiliationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliation, err := u.affiliationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find affiliation: %+v", err)
		return nil, err
	}
	if affiliation == nil {
		return nil, ErrAffiliationNotFound
	}

	oldValue := *affiliation

	affiliation.Name = req.Name
	affiliation.Location = req.Location
	affiliation.Description = req.Description
	affiliation.Website = req.Website

	if err := u.affiliationRepo.Update(tx, affiliation); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrAffiliationNameTaken
		}
		u.log.Warnf("Failed to update affiliation: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionAffiliationUpdate, "affiliation", affiliation.Name, oldValue, affiliation); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AffiliationToResponse(affiliation), nil
}

// Delete refuses to remove an affiliation while anything still points at it:
// member profiles, drugs, clinical trials or publications.
func (u *affiliationUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliation, err := u.affiliationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find affiliation: %+v", err)
		return err
	}
	if affiliation == nil {
		return ErrAffiliationNotFound
	}

	counts := []func(*gorm.DB, uint) (int64, error){
		u.profileRepo.CountByAffiliationID,
		u.drugRepo.CountByAffiliationID,
		u.trialRepo.CountByAffiliationID,
		u.publicationRepo.CountByAffiliationID,
	}
	for _, count := range counts {
		n, err := count(tx, id)
		if err != nil {
			u.log.Warnf("Failed to count affiliation dependents: %+v", err)
			return err
		}
		if n > 0 {
			return ErrAffiliationInUse
		}
	}

	if _, err := u.affiliationRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "affiliation") {
			return ErrAffiliationInUse
		}
		u.log.Warnf("Failed to delete affiliation: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &userID, entity.AuditActionAffiliationDelete, "affiliation", affiliation.Name, affiliation); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
