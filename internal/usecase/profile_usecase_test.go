package usecase

import (
	"context"
	"testing"

	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdateSetsAffiliationAndSpecialization(t *testing.T) {
	e := newEnv(t)
	userID := e.seedUnaffiliated(t, "researcher@example.org")

	affiliation := &entity.Affiliation{Name: "Helix Labs"}
	require.NoError(t, e.db.Create(affiliation).Error)

	updated, err := e.profiles.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{
		Bio:            "Ten years in oncology research",
		Interests:      "kinase inhibitors",
		Specialization: string(entity.SpecializationPharmaResearcher),
		AffiliationID:  &affiliation.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.SpecializationPharmaResearcher), updated.Specialization)
	require.NotNil(t, updated.Affiliation)
	assert.Equal(t, "Helix Labs", updated.Affiliation.Name)
}

func TestProfileUpdateRejectsUnknownSpecialization(t *testing.T) {
	e := newEnv(t)
	userID := e.seedUnaffiliated(t, "researcher@example.org")

	_, err := e.profiles.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{
		Specialization: "Wizard",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "specialization")
}

func TestProfileUpdateRejectsUnknownAffiliation(t *testing.T) {
	e := newEnv(t)
	userID := e.seedUnaffiliated(t, "researcher@example.org")

	missing := uint(12345)
	_, err := e.profiles.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{
		AffiliationID: &missing,
	})
	assert.ErrorIs(t, err, ErrAffiliationNotFound)
}

func TestProfileUpdateCanDetachAffiliation(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")

	updated, err := e.profiles.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{
		Specialization: string(entity.SpecializationNone),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Affiliation)
}
