package usecase

import (
	"io"
	"testing"

	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/policy"
	"drug-insights-hub/internal/repository"
	"drug-insights-hub/internal/service"
	"drug-insights-hub/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Affiliation{},
		&entity.User{},
		&entity.UserProfile{},
		&entity.Drug{},
		&entity.ClinicalTrial{},
		&entity.Publication{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// env wires real repositories against an in-memory database
type env struct {
	db           *gorm.DB
	log          *logrus.Logger
	validate     *validator.CustomValidator
	gate         *policy.AffiliationGate
	auditService service.AuditService

	drugs        DrugUsecase
	trials       ClinicalTrialUsecase
	publications PublicationUsecase
	affiliations AffiliationUsecase
	profiles     ProfileUsecase
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := setupTestDB(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	validate := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewUserProfileRepository()
	affiliationRepo := repository.NewAffiliationRepository()
	drugRepo := repository.NewDrugRepository()
	trialRepo := repository.NewClinicalTrialRepository()
	publicationRepo := repository.NewPublicationRepository()
	auditRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditRepo)
	gate := policy.NewAffiliationGate(profileRepo)

	return &env{
		db:           db,
		log:          log,
		validate:     validate,
		gate:         gate,
		auditService: auditService,
		drugs:        NewDrugUsecase(db, log, validate, drugRepo, trialRepo, gate, auditService),
		trials:       NewClinicalTrialUsecase(db, log, validate, trialRepo, drugRepo, userRepo, gate, auditService),
		publications: NewPublicationUsecase(db, log, validate, publicationRepo, trialRepo, userRepo, gate, auditService),
		affiliations: NewAffiliationUsecase(db, log, affiliationRepo, profileRepo, drugRepo, trialRepo, publicationRepo, auditService),
		profiles:     NewProfileUsecase(db, log, profileRepo, affiliationRepo, auditService),
	}
}

// seedMember creates an affiliation and a user whose profile belongs to it
func (e *env) seedMember(t *testing.T, affiliationName string) (uint, uuid.UUID) {
	t.Helper()

	affiliation := &entity.Affiliation{Name: affiliationName}
	require.NoError(t, e.db.Create(affiliation).Error)

	user := &entity.User{Email: affiliationName + "@example.org", Password: "hash", FullName: "Member of " + affiliationName}
	require.NoError(t, e.db.Create(user).Error)

	profile := &entity.UserProfile{
		UserID:         user.ID,
		Specialization: entity.SpecializationNone,
		AffiliationID:  &affiliation.ID,
	}
	require.NoError(t, e.db.Create(profile).Error)

	return affiliation.ID, user.ID
}

// seedUnaffiliated creates a user with a profile that has no affiliation
func (e *env) seedUnaffiliated(t *testing.T, email string) uuid.UUID {
	t.Helper()

	user := &entity.User{Email: email, Password: "hash", FullName: "Unaffiliated"}
	require.NoError(t, e.db.Create(user).Error)

	profile := &entity.UserProfile{UserID: user.ID, Specialization: entity.SpecializationNone}
	require.NoError(t, e.db.Create(profile).Error)

	return user.ID
}
