package usecase

import (
	"context"
	"testing"
	"time"

	"drug-insights-hub/config"
	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/repository"
	"drug-insights-hub/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newAuthEnv builds the auth usecase without Redis; only the flows that stay
// on the database are exercised here.
func newAuthEnv(t *testing.T, e *env) AuthUsecase {
	t.Helper()

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	return NewAuthUsecase(
		e.db,
		e.log,
		repository.NewUserRepository(),
		repository.NewUserProfileRepository(),
		e.auditService,
		jwtService,
		nil,
	)
}

func TestRegisterCreatesProfileWithAccount(t *testing.T) {
	e := newEnv(t)
	auth := newAuthEnv(t, e)

	user, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.org",
		Password: "secret123",
		FullName: "New Researcher",
	})
	require.NoError(t, err)

	require.NotNil(t, user.Profile)
	assert.Equal(t, string(entity.SpecializationNone), user.Profile.Specialization)
	assert.Nil(t, user.Profile.Affiliation)

	// The profile row exists alongside the account
	var profile entity.UserProfile
	require.NoError(t, e.db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Nil(t, profile.AffiliationID)

	// The stored password is hashed
	var stored entity.User
	require.NoError(t, e.db.Where("id = ?", user.ID).First(&stored).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterWritesAuditTrail(t *testing.T) {
	e := newEnv(t)
	auth := newAuthEnv(t, e)

	user, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.org",
		Password: "secret123",
		FullName: "New Researcher",
	})
	require.NoError(t, err)

	var logEntry entity.AuditLog
	require.NoError(t, e.db.Where("action = ?", entity.AuditActionUserRegister).First(&logEntry).Error)
	require.NotNil(t, logEntry.UserID)
	assert.Equal(t, user.ID, *logEntry.UserID)
}

func TestGetCurrentUserNotFound(t *testing.T) {
	e := newEnv(t)
	auth := newAuthEnv(t, e)

	user, err := auth.Register(context.Background(), &dto.RegisterRequest{
		Email:    "new@example.org",
		Password: "secret123",
		FullName: "New Researcher",
	})
	require.NoError(t, err)

	fetched, err := auth.GetCurrentUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.org", fetched.Email)
}
