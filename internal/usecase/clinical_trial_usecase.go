package usecase

import (
	"context"
	"errors"
	"time"

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
	ErrTrialNotFound   = errors.New("clinical trial not found")
	ErrTrialTitleTaken = errors.New("clinical trial title already taken")
)

const dateLayout = "2006-01-02"

type ClinicalTrialUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateClinicalTrialRequest) (*dto.ClinicalTrialResponse, error)
	GetByID(ctx context.Context, viewerID *uuid.UUID, id uint) (*dto.ClinicalTrialResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page int) (*dto.ClinicalTrialListResponse, *response.Meta, error)
	Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateClinicalTrialRequest) (*dto.ClinicalTrialResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
}

type clinicalTrialUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	trialRepo    repository.ClinicalTrialRepository
	drugRepo     repository.DrugRepository
	userRepo     repository.UserRepository
	gate         *policy.AffiliationGate
	auditService service.AuditService
}

func NewClinicalTrialUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	trialRepo repository.ClinicalTrialRepository,
	drugRepo repository.DrugRepository,
	userRepo repository.UserRepository,
	gate *policy.AffiliationGate,
	auditService service.AuditService,
) ClinicalTrialUsecase {
	return &clinicalTrialUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		trialRepo:    trialRepo,
		drugRepo:     drugRepo,
		userRepo:     userRepo,
		gate:         gate,
		auditService: auditService,
	}
}

// Create registers a trial under the requester's affiliation. The studied drug
// must belong to the same affiliation; the reference is fixed afterwards.
func (u *clinicalTrialUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateClinicalTrialRequest) (*dto.ClinicalTrialResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validate.FormatValidationErrors(err)}
	}

	phase := entity.DevelopmentStatus(req.Phase)
	if !phase.IsValid() {
		return nil, newFieldError("phase", "is not a recognized trial phase")
	}

	startDate, endDate, err := parseTrialDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	drug, err := u.drugRepo.FindByID(tx, req.DrugID)
	if err != nil {
		u.log.Warnf("Failed to find drug: %+v", err)
		return nil, err
	}
	if drug == nil || drug.AffiliationID != affiliationID {
		return nil, newFieldError("drug_id", "must reference a drug owned by your affiliation")
	}

	participants, verr := u.resolveParticipants(tx, req.ParticipantIDs)
	if verr != nil {
		return nil, verr
	}

	trial := &entity.ClinicalTrial{
		Title:         req.Title,
		Phase:         phase,
		StartDate:     startDate,
		EndDate:       endDate,
		Description:   req.Description,
		DrugID:        drug.ID,
		AffiliationID: affiliationID,
	}

	if err := trial.CheckDates(); err != nil {
		return nil, newFieldError("end_date", err.Error())
	}

	if err := u.trialRepo.Create(tx, trial); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrTrialTitleTaken
		}
		u.log.Warnf("Failed to create clinical trial: %+v", err)
		return nil, err
	}

	if len(participants) > 0 {
		if err := u.trialRepo.ReplaceParticipants(tx, trial, participants); err != nil {
			u.log.Warnf("Failed to set trial participants: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogCreate(tx, &userID, entity.AuditActionTrialCreate, "clinical_trial", trial.Title, trial); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	trial.Drug = *drug
	trial.Participants = participants
	resp := converter.ClinicalTrialToResponse(trial)
	resp.CanModify = true
	return resp, nil
}

func (u *clinicalTrialUsecase) GetByID(ctx context.Context, viewerID *uuid.UUID, id uint) (*dto.ClinicalTrialResponse, error) {
	db := u.db.WithContext(ctx)

	trial, err := u.trialRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find clinical trial: %+v", err)
		return nil, err
	}
	if trial == nil {
		return nil, ErrTrialNotFound
	}

	resp := converter.ClinicalTrialToResponse(trial)
	if viewerID != nil {
		resp.CanModify = u.gate.CanModify(db, *viewerID, trial)
	}
	return resp, nil
}

func (u *clinicalTrialUsecase) ListMine(ctx context.Context, userID uuid.UUID, page int) (*dto.ClinicalTrialListResponse, *response.Meta, error) {
	db := u.db.WithContext(ctx)

	affiliationID, err := u.gate.ResolveAffiliation(db, userID)
	if err != nil {
		return nil, nil, err
	}

	total, err := u.trialRepo.CountByAffiliationID(db, affiliationID)
	if err != nil {
		u.log.Warnf("Failed to count clinical trials: %+v", err)
		return nil, nil, err
	}

	window := pagination.Resolve(page, pagination.DefaultPageSize, total)
	trials, err := u.trialRepo.FindByAffiliationID(db, affiliationID, window.Size, window.Offset())
	if err != nil {
		u.log.Warnf("Failed to list clinical trials: %+v", err)
		return nil, nil, err
	}

	responses := converter.ClinicalTrialsToResponses(trials)
	for i := range responses {
		responses[i].CanModify = true
	}

	return &dto.ClinicalTrialListResponse{ClinicalTrials: responses, Total: total}, window.Meta(total), nil
}

// Update edits the trial in place. The drug reference and owning affiliation
// are not editable; participants are replaced wholesale.
func (u *clinicalTrialUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateClinicalTrialRequest) (*dto.ClinicalTrialResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return nil, err
	}

	trial, err := u.trialRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinical trial: %+v", err)
		return nil, err
	}
	if trial == nil {
		return nil, ErrTrialNotFound
	}

	if err := u.gate.Authorize(affiliationID, trial); err != nil {
		return nil, err
	}

	if err := u.validate.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validate.FormatValidationErrors(err)}
	}

	phase := entity.DevelopmentStatus(req.Phase)
	if !phase.IsValid() {
		return nil, newFieldError("phase", "is not a recognized trial phase")
	}

	startDate, endDate, err := parseTrialDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	participants, verr := u.resolveParticipants(tx, req.ParticipantIDs)
	if verr != nil {
		return nil, verr
	}

	oldValue := *trial

	trial.Title = req.Title
	trial.Phase = phase
	trial.StartDate = startDate
	trial.EndDate = endDate
	trial.Description = req.Description

	if err := trial.CheckDates(); err != nil {
		return nil, newFieldError("end_date", err.Error())
	}

	if err := u.trialRepo.Update(tx, trial); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrTrialTitleTaken
		}
		u.log.Warnf("Failed to update clinical trial: %+v", err)
		return nil, err
	}

	if err := u.trialRepo.ReplaceParticipants(tx, trial, participants); err != nil {
		u.log.Warnf("Failed to replace trial participants: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionTrialUpdate, "clinical_trial", trial.Title, oldValue, trial); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	trial.Participants = participants
	resp := converter.ClinicalTrialToResponse(trial)
	resp.CanModify = true
	return resp, nil
}

func (u *clinicalTrialUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return err
	}

	trial, err := u.trialRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find clinical trial: %+v", err)
		return err
	}
	if trial == nil {
		return ErrTrialNotFound
	}

	if err := u.gate.Authorize(affiliationID, trial); err != nil {
		return err
	}

	if err := u.trialRepo.Delete(tx, trial); err != nil {
		u.log.Warnf("Failed to delete clinical trial: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &userID, entity.AuditActionTrialDelete, "clinical_trial", trial.Title, trial); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// resolveParticipants loads the referenced accounts and rejects the request
// when any id is unknown.
func (u *clinicalTrialUsecase) resolveParticipants(db *gorm.DB, ids []uuid.UUID) ([]entity.User, *ValidationError) {
	if len(ids) == 0 {
		return nil, nil
	}

	users, err := u.userRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find participants: %+v", err)
		return nil, newFieldError("participant_ids", "could not be resolved")
	}
	if len(users) != len(ids) {
		return nil, newFieldError("participant_ids", "contains unknown user ids")
	}
	return users, nil
}

func parseTrialDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, newFieldError("start_date", "must be a date in "+dateLayout+" format")
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, newFieldError("end_date", "must be a date in "+dateLayout+" format")
	}
	return startDate, endDate, nil
}
