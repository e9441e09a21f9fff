package usecase

import (
	"context"

	"drug-insights-hub/internal/converter"
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/domain/repository"
	"drug-insights-hub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	profileRepo     repository.UserProfileRepository
	affiliationRepo repository.AffiliationRepository
	auditService    service.AuditService
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.UserProfileRepository,
	affiliationRepo repository.AffiliationRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		db:              db,
		log:             log,
		profileRepo:     profileRepo,
		affiliationRepo: affiliationRepo,
		auditService:    auditService,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	return converter.ProfileToResponse(profile), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	specialization := entity.Specialization(req.Specialization)
	if req.Specialization == "" {
		specialization = entity.SpecializationNone
	}
	if !specialization.IsValid() {
		return nil, newFieldError("specialization", "is not a recognized specialization")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.profileRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	// Switching affiliation requires the target to exist
	if req.AffiliationID != nil {
		affiliation, err := u.affiliationRepo.FindByID(tx, *req.AffiliationID)
		if err != nil {
			u.log.Warnf("Failed to find affiliation: %+v", err)
			return nil, err
		}
		if affiliation == nil {
			return nil, ErrAffiliationNotFound
		}
	}

	oldValue := *profile

	profile.Bio = req.Bio
	profile.Interests = req.Interests
	profile.Specialization = specialization
	profile.AffiliationID = req.AffiliationID

	if err := u.profileRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &userID, entity.AuditActionProfileUpdate, "user_profile", userID.String(), oldValue, profile); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Re-read to pick up the affiliation preload for the response
	updated, err := u.profileRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to reload profile: %+v", err)
		return nil, err
	}

	return converter.ProfileToResponse(updated), nil
}
