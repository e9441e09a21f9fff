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
	ErrDrugNotFound  = errors.New("drug not found")
	ErrDrugNameTaken = errors.New("proprietary name already taken")
	// ErrDrugInUse blocks deletion while clinical trials still reference the drug.
	ErrDrugInUse = errors.New("drug is referenced by clinical trials")
)

type DrugUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDrugRequest) (*dto.DrugResponse, error)
	GetByID(ctx context.Context, viewerID *uuid.UUID, id uint) (*dto.DrugResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID, page int) (*dto.DrugListResponse, *response.Meta, error)
	Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateDrugRequest) (*dto.DrugResponse, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
}

type drugUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	drugRepo     repository.DrugRepository
	trialRepo    repository.ClinicalTrialRepository
	gate         *policy.AffiliationGate
	auditService service.AuditService
}

func NewDrugUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	drugRepo repository.DrugRepository,
	trialRepo repository.ClinicalTrialRepository,
	gate *policy.AffiliationGate,
	auditService service.AuditService,
) DrugUsecase {
	return &drugUsecase{
		db:           db,
		log:          log,
		validate:     validate,
		drugRepo:     drugRepo,
		trialRepo:    trialRepo,
		gate:         gate,
		auditService: auditService,
	}
}

// Create registers a drug under the requester's affiliation. The affiliation
// check runs before validation, so an unaffiliated account is rejected even
// with an invalid payload.
func (u *drugUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDrugRequest) (*dto.DrugResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validate.FormatValidationErrors(err)}
	}

	drug := &entity.Drug{
		ProprietaryName:                 normalizeOptional(req.ProprietaryName),
		InternationalNonProprietaryName: req.InternationalNonProprietaryName,
		Description:                     req.Description,
		AffiliationID:                   affiliationID,
	}

	if err := applyDrugClassification(drug, req.DrugType, req.DevelopmentStatus); err != nil {
		return nil, err
	}

	if err := u.drugRepo.Create(tx, drug); err != nil {
		if isDuplicateKeyError(err, "proprietary_name") {
			return nil, ErrDrugNameTaken
		}
		u.log.Warnf("Failed to create drug: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &userID, entity.AuditActionDrugCreate, "drug", drug.InternationalNonProprietaryName, drug); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	resp := converter.DrugToResponse(drug)
	resp.CanModify = true
	return resp, nil
}

func (u *drugUsecase) GetByID(ctx context.Context, viewerID *uuid.UUID, id uint) (*dto.DrugResponse, error) {
	db := u.db.WithContext(ctx)

	drug, err := u.drugRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find drug: %+v", err)
		return nil, err
	}
	if drug == nil {
		return nil, ErrDrugNotFound
	}

	resp := converter.DrugToResponse(drug)
	if viewerID != nil {
		resp.CanModify = u.gate.CanModify(db, *viewerID, drug)
	}
	return resp, nil
}

func (u *drugUsecase) ListMine(ctx context.Context, userID uuid.UUID, page int) (*dto.DrugListResponse, *response.Meta, error) {
	db := u.db.WithContext(ctx)

	affiliationID, err := u.gate.ResolveAffiliation(db, userID)
	if err != nil {
		return nil, nil, err
	}

	total, err := u.drugRepo.CountByAffiliationID(db, affiliationID)
	if err != nil {
		u.log.Warnf("Failed to count drugs: %+v", err)
		return nil, nil, err
	}

	window := pagination.Resolve(page, pagination.DefaultPageSize, total)
	drugs, err := u.drugRepo.FindByAffiliationID(db, affiliationID, window.Size, window.Offset())
	if err != nil {
		u.log.Warnf("Failed to list drugs: %+v", err)
		return nil, nil, err
	}

	responses := converter.DrugsToResponses(drugs)
	for i := range responses {
		responses[i].CanModify = true
	}

	return &dto.DrugListResponse{Drugs: responses, Total: total}, window.Meta(total), nil
}

func (u *drugUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateDrugRequest) (*dto.DrugResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return nil, err
	}

	drug, err := u.drugRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find drug: %+v", err)
		return nil, err
	}
	if drug == nil {
		return nil, ErrDrugNotFound
	}

	if err := u.gate.Authorize(affiliationID, drug); err != nil {
		return nil, err
	}

	if err := u.validate.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validate.FormatValidationErrors(err)}
	}

	oldValue := *drug

	drug.ProprietaryName = normalizeOptional(req.ProprietaryName)
	drug.InternationalNonProprietaryName = req.InternationalNonProprietaryName
	drug.Description = req.Description

	if err := applyDrugClassification(drug, req.DrugType, req.DevelopmentStatus); err != nil {
		return nil, err
	}

	if err := u.drugRepo.Update(tx, drug); err != nil {
		if isDuplicateKeyError(err, "proprietary_name") {
			return nil, ErrDrugNameTaken
		}
		u.log.Warnf("Failed to update drug: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionDrugUpdate, "drug", drug.InternationalNonProprietaryName, oldValue, drug); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	resp := converter.DrugToResponse(drug)
	resp.CanModify = true
	return resp, nil
}

func (u *drugUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliationID, err := u.gate.ResolveAffiliation(tx, userID)
	if err != nil {
		return err
	}

	drug, err := u.drugRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find drug: %+v", err)
		return err
	}
	if drug == nil {
		return ErrDrugNotFound
	}

	if err := u.gate.Authorize(affiliationID, drug); err != nil {
		return err
	}

	trials, err := u.trialRepo.CountByDrugID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count trials for drug: %+v", err)
		return err
	}
	if trials > 0 {
		return ErrDrugInUse
	}

	if _, err := u.drugRepo.Delete(tx, id); err != nil {
		if isForeignKeyError(err, "drug") {
			return ErrDrugInUse
		}
		u.log.Warnf("Failed to delete drug: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(tx, &userID, entity.AuditActionDrugDelete, "drug", drug.InternationalNonProprietaryName, drug); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// applyDrugClassification validates and sets the enum fields. A blank status
// leaves the column default in place on create and keeps the stored value
// meaningful on update.
func applyDrugClassification(drug *entity.Drug, drugType, status string) error {
	if drugType == "" {
		drug.DrugType = nil
	} else {
		t := entity.DrugType(drugType)
		if !t.IsValid() {
			return newFieldError("drug_type", "is not a recognized drug type")
		}
		drug.DrugType = &t
	}

	if status != "" {
		s := entity.DevelopmentStatus(status)
		if !s.IsValid() {
			return newFieldError("development_status", "is not a recognized development status")
		}
		drug.DevelopmentStatus = s
	} else if drug.DevelopmentStatus == "" {
		drug.DevelopmentStatus = entity.StatusPreclinical
	}

	return nil
}

// normalizeOptional maps an empty optional string to nil so the unique index
// on proprietary names never collides on blanks.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
