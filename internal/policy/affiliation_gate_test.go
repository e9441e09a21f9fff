package policy

import (
	"testing"

	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGateDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Affiliation{}, &entity.User{}, &entity.UserProfile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProfile(t *testing.T, db *gorm.DB, affiliationID *uint) uuid.UUID {
	t.Helper()
	user := &entity.User{Email: uuid.NewString() + "@example.org", Password: "hash", FullName: "Test"}
	require.NoError(t, db.Create(user).Error)
	profile := &entity.UserProfile{UserID: user.ID, Specialization: entity.SpecializationNone, AffiliationID: affiliationID}
	require.NoError(t, db.Create(profile).Error)
	return user.ID
}

func TestResolveAffiliation(t *testing.T) {
	db := setupGateDB(t)
	gate := NewAffiliationGate(repository.NewUserProfileRepository())

	affiliation := &entity.Affiliation{Name: "Helix Labs"}
	require.NoError(t, db.Create(affiliation).Error)

	memberID := seedProfile(t, db, &affiliation.ID)
	loneID := seedProfile(t, db, nil)

	resolved, err := gate.ResolveAffiliation(db, memberID)
	require.NoError(t, err)
	assert.Equal(t, affiliation.ID, resolved)

	_, err = gate.ResolveAffiliation(db, loneID)
	assert.ErrorIs(t, err, ErrUnaffiliated)

	// A user without any profile row is treated the same way
	_, err = gate.ResolveAffiliation(db, uuid.New())
	assert.ErrorIs(t, err, ErrUnaffiliated)
}

func TestAuthorizeComparesOwners(t *testing.T) {
	gate := NewAffiliationGate(repository.NewUserProfileRepository())

	drug := &entity.Drug{InternationalNonProprietaryName: "examplinib", AffiliationID: 7}

	assert.NoError(t, gate.Authorize(7, drug))
	assert.ErrorIs(t, gate.Authorize(8, drug), ErrForbidden)
}

func TestAuthorizeMutationAppliesToEveryEntityKind(t *testing.T) {
	db := setupGateDB(t)
	gate := NewAffiliationGate(repository.NewUserProfileRepository())

	mine := &entity.Affiliation{Name: "Helix Labs"}
	require.NoError(t, db.Create(mine).Error)
	other := &entity.Affiliation{Name: "Vertex Biotech"}
	require.NoError(t, db.Create(other).Error)

	memberID := seedProfile(t, db, &mine.ID)

	owned := []AffiliationOwned{
		&entity.Drug{AffiliationID: mine.ID},
		&entity.ClinicalTrial{AffiliationID: mine.ID},
		&entity.Publication{AffiliationID: mine.ID},
	}
	for _, resource := range owned {
		assert.NoError(t, gate.AuthorizeMutation(db, memberID, resource))
	}

	foreign := []AffiliationOwned{
		&entity.Drug{AffiliationID: other.ID},
		&entity.ClinicalTrial{AffiliationID: other.ID},
		&entity.Publication{AffiliationID: other.ID},
	}
	for _, resource := range foreign {
		assert.ErrorIs(t, gate.AuthorizeMutation(db, memberID, resource), ErrForbidden)
	}
}

func TestCanModify(t *testing.T) {
	db := setupGateDB(t)
	gate := NewAffiliationGate(repository.NewUserProfileRepository())

	affiliation := &entity.Affiliation{Name: "Helix Labs"}
	require.NoError(t, db.Create(affiliation).Error)

	memberID := seedProfile(t, db, &affiliation.ID)
	loneID := seedProfile(t, db, nil)

	drug := &entity.Drug{AffiliationID: affiliation.ID}

	assert.True(t, gate.CanModify(db, memberID, drug))
	assert.False(t, gate.CanModify(db, loneID, drug))
}
