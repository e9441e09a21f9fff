package usecase

import (
	"context"
	"errors"

	"drug-insights-hub/internal/converter"
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/domain/repository"
	"drug-insights-hub/internal/policy"
	"drug-insights-hub/internal/service"
	"drug-insights-hub/pkg/pagination"
	"drug-insights-hub/pkg/response"
	"drug-insights-hub/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPublicationNotFound   = errors.New("publication not found")
	ErrPublicationTitleTaken = errors.New("publication title already taken")
)

type PublicationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePublicationRequest) (*dto.PublicationResponse, error)
	GetByID(ctx context.Context, viewerID *uuid.UUID, id uint) (*dto.PublicationResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page int) (*dto.PublicationListResponse, *response.Meta, error)
	Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdatePublicationRequest) (*dto.PublicationResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
}

type publicationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	validate        *validator.CustomValidator
	publicationRepo repository.PublicationRepository
	trialRepo       repository.ClinicalTrialRepository
	userRepo        repository.UserRepository
	gate            *policy.AffiliationGate
	auditService    service.AuditService
}

func NewPublicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	publicationRepo repository.PublicationRepository,
	trialRepo repository.ClinicalTrialRepository,
	userRepo repository.UserRepository,
	gate *policy.AffiliationGate,
	auditService service.AuditService,
) PublicationUsecase {
	return &publicationUsecase{
		db:              db,
		log:             log,
		validate:        validate,
		publicationRepo: publicationRepo,
		trialRepo:       trialRepo,
		userRepo:        userRepo,
		gate:            gate,
		auditService:    auditService,
	}
}

// Create registers a publication under the requester's affiliation. Linked
// trials must be owned by the same affiliation; the publication date is
// stamped by the database and never supplied by the client.
func (u *publicationUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreatePublicationRequest) (*dto.PublicationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validate.FormatValidationErrors(err)}
	}

	authors, verr := u.resolveAuthors(tx, req.AuthorIDs)
	if verr != nil {
		return nil, verr
	}

	trials, verr := u.resolveTrials(tx, req.TrialIDs, affiliationID)
	if verr != nil {
		return nil, verr
	}

	publication := &entity.Publication{
		Title:         req.Title,
		Journal:       req.Journal,
		AffiliationID: affiliationID,
	}

	if err := u.publicationRepo.Create(tx, publication); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrPublicationTitleTaken
		}
		u.log.Warnf("Failed to create publication: %+v", err)
		return nil, err
	}

	if len(authors) > 0 {
		if err := u.publicationRepo.ReplaceAuthors(tx, publication, authors); err != nil {
			u.log.Warnf("Failed to set publication authors: %+v", err)
			return nil, err
		}
	}
	if len(trials) > 0 {
		if err := u.publicationRepo.ReplaceTrials(tx, publication, trials); err != nil {
			u.log.Warnf("Failed to set publication trials: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(tx, &userID, entity.AuditActionPublicationCreate, "publication", publication.Title, publication); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	publication.Authors = authors
	publication.Trials = trials
	resp := converter.PublicationToResponse(publication)
	resp.CanModify = true
	return resp, nil
}

func (u *publicationUsecase) GetByID(ctx context.Context, viewerID *uuid.UUID, id uint) (*dto.PublicationResponse, error) {
	db := u.db.WithContext(ctx)

	publication, err := u.publicationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find publication: %+v", err)
		return nil, err
	}
	if publication == nil {
		return nil, ErrPublicationNotFound
	}

	resp := converter.PublicationToResponse(publication)
	if viewerID != nil {
		resp.CanModify = u.gate.CanModify(db, *viewerID, publication)
	}
	return resp, nil
}

func (u *publicationUsecase) ListMine(ctx context.Context, userID uuid.UUID, page int) (*dto.PublicationListResponse, *response.Meta, error) {
	db := u.db.WithContext(ctx)

	affiliationID, err := u.gate.ResolveAffiliation(db, userID)
	if err != nil {
		return nil, nil, err
	}

	total, err := u.publicationRepo.CountByAffiliationID(db, affiliationID)
	if err != nil {
		u.log.Warnf("Failed to count publications: %+v", err)
		return nil, nil, err
	}

	window := pagination.Resolve(page, pagination.DefaultPageSize, total)
	publications, err := u.publicationRepo.FindByAffiliationID(db, affiliationID, window.Size, window.Offset())
	if err != nil {
		u.log.Warnf("Failed to list publications: %+v", err)
		return nil, nil, err
	}

	responses := converter.PublicationsToResponses(publications)
	for i := range responses {
		responses[i].CanModify = true
	}

	return &dto.PublicationListResponse{Publications: responses, Total: total}, window.Meta(total), nil
}

func (u *publicationUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdatePublicationRequest) (*dto.PublicationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return nil, err
	}

	publication, err := u.publicationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find publication: %+v", err)
		return nil, err
	}
	if publication == nil {
		return nil, ErrPublicationNotFound
	}

	if err := u.gate.Authorize(affiliationID, publication); err != nil {
		return nil, err
	}

	if err := u.validate.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validate.FormatValidationErrors(err)}
	}

	authors, verr := u.resolveAuthors(tx, req.AuthorIDs)
	if verr != nil {
		return nil, verr
	}

	trials, verr := u.resolveTrials(tx, req.TrialIDs, affiliationID)
	if verr != nil {
		return nil, verr
	}

	oldValue := *publication

	publication.Title = req.Title
	publication.Journal = req.Journal

	if err := u.publicationRepo.Update(tx, publication); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrPublicationTitleTaken
		}
		u.log.Warnf("Failed to update publication: %+v", err)
		return nil, err
	}

	if err := u.publicationRepo.ReplaceAuthors(tx, publication, authors); err != nil {
		u.log.Warnf("Failed to replace publication authors: %+v", err)
		return nil, err
	}
	if err := u.publicationRepo.ReplaceTrials(tx, publication, trials); err != nil {
		u.log.Warnf("Failed to replace publication trials: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionPublicationUpdate, "publication", publication.Title, oldValue, publication); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	publication.Authors = authors
	publication.Trials = trials
	resp := converter.PublicationToResponse(publication)
	resp.CanModify = true
	return resp, nil
}

func (u *publicationUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return err
	}

	publication, err := u.publicationRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find publication: %+v", err)
		return err
	}
	if publication == nil {
		return ErrPublicationNotFound
	}

	if err := u.gate.Authorize(affiliationID, publication); err != nil {
		return err
	}

	if err := u.publicationRepo.Delete(tx, publication); err != nil {
		u.log.Warnf("Failed to delete publication: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &userID, entity.AuditActionPublicationDelete, "publication", publication.Title, publication); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *publicationUsecase) resolveAuthors(db *gorm.DB, ids []uuid.UUID) ([]entity.User, *ValidationError) {
	if len(ids) == 0 {
		return nil, nil
	}

	users, err := u.userRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find authors: %+v", err)
		return nil, newFieldError("author_ids", "could not be resolved")
	}
	if len(users) != len(ids) {
		return nil, newFieldError("author_ids", "contains unknown user ids")
	}
	return users, nil
}

// resolveTrials loads the referenced trials and requires every one of them to
// be owned by the caller's affiliation.
func (u *publicationUsecase) resolveTrials(db *gorm.DB, ids []uint, affiliationID uint) ([]entity.ClinicalTrial, *ValidationError) {
	if len(ids) == 0 {
		return nil, nil
	}

	trials, err := u.trialRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find trials: %+v", err)
		return nil, newFieldError("trial_ids", "could not be resolved")
	}
	if len(trials) != len(ids) {
		return nil, newFieldError("trial_ids", "contains unknown trial ids")
	}
	for i := range trials {
		if trials[i].AffiliationID != affiliationID {
			return nil, newFieldError("trial_ids", "must reference trials owned by your affiliation")
		}
	}
	return trials, nil
}
