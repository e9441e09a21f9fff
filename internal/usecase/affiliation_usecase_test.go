package usecase

import (
	"context"
	"testing"

	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffiliationCreateAndGet(t *testing.T) {
	e := newEnv(t)
	userID := e.seedUnaffiliated(t, "founder@example.org")

	created, err := e.affiliations.Create(context.Background(), userID, &dto.CreateAffiliationRequest{
		Name:     "Helix Labs",
		Location: "Basel",
		Website:  "https://helix.example.org",
	})
	require.NoError(t, err)

	fetched, err := e.affiliations.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Helix Labs", fetched.Name)
	assert.Equal(t, "Basel", fetched.Location)
}

func TestAffiliationGetNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.affiliations.GetByID(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrAffiliationNotFound)
}

func TestAffiliationDeleteBlockedByMembers(t *testing.T) {
	e := newEnv(t)
	affiliationID, userID := e.seedMember(t, "Helix Labs")

	err := e.affiliations.Delete(context.Background(), userID, affiliationID)
	assert.ErrorIs(t, err, ErrAffiliationInUse)

	// Detach the member, then deletion goes through
	require.NoError(t, e.db.Model(&entity.UserProfile{}).
		Where("user_id = ?", userID).
		Update("affiliation_id", nil).Error)

	require.NoError(t, e.affiliations.Delete(context.Background(), userID, affiliationID))

	_, err = e.affiliations.GetByID(context.Background(), affiliationID)
	assert.ErrorIs(t, err, ErrAffiliationNotFound)
}

func TestAffiliationDeleteBlockedByResearchEntities(t *testing.T) {
	e := newEnv(t)
	affiliationID, userID := e.seedMember(t, "Helix Labs")

	e.seedDrug(t, userID, "examplinib")

	// Detach the member so only the drug blocks deletion
	require.NoError(t, e.db.Model(&entity.UserProfile{}).
		Where("user_id = ?", userID).
		Update("affiliation_id", nil).Error)

	err := e.affiliations.Delete(context.Background(), userID, affiliationID)
	assert.ErrorIs(t, err, ErrAffiliationInUse)
}

func TestAffiliationListReturnsAll(t *testing.T) {
	e := newEnv(t)
	e.seedMember(t, "Helix Labs")
	e.seedMember(t, "Vertex Biotech")

	list, err := e.affiliations.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Len(t, list.Affiliations, 2)
}

func TestAffiliationUpdate(t *testing.T) {
	e := newEnv(t)
	affiliationID, userID := e.seedMember(t, "Helix Labs")

	updated, err := e.affiliations.Update(context.Background(), userID, affiliationID, &dto.UpdateAffiliationRequest{
		Name:     "Helix Laboratories",
		Location: "Basel",
	})
	require.NoError(t, err)
	assert.Equal(t, "Helix Laboratories", updated.Name)
}
