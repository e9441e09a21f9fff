package usecase

import (
	"context"
	"fmt"
	"testing"

	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrugCreateDefaultsToPreclinical(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")

	drug, err := e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
	})
	require.NoError(t, err)

	assert.Equal(t, "examplinib", drug.InternationalNonProprietaryName)
	assert.Equal(t, string(entity.StatusPreclinical), drug.DevelopmentStatus)
	assert.Nil(t, drug.ProprietaryName)
	assert.True(t, drug.CanModify)
}

func TestDrugCreateUnaffiliatedBeatsValidation(t *testing.T) {
	e := newEnv(t)
	userID := e.seedUnaffiliated(t, "nobody@example.org")

	// The payload is invalid too; the missing affiliation must win.
	_, err := e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{})
	assert.ErrorIs(t, err, policy.ErrUnaffiliated)
}

func TestDrugCreateRejectsUnknownEnums(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")

	_, err := e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
		DrugType:                        "Miracle Cure",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "drug_type")

	_, err = e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
		DevelopmentStatus:               "Phase IV",
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "development_status")
}

func TestDrugUpdateAcrossAffiliationsIsForbidden(t *testing.T) {
	e := newEnv(t)
	_, ownerID := e.seedMember(t, "Helix Labs")
	_, outsiderID := e.seedMember(t, "Vertex Biotech")

	created, err := e.drugs.Create(context.Background(), ownerID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
		DevelopmentStatus:               string(entity.StatusPhaseI),
	})
	require.NoError(t, err)

	_, err = e.drugs.Update(context.Background(), outsiderID, created.ID, &dto.UpdateDrugRequest{
		InternationalNonProprietaryName: "hijackednib",
	})
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// The entity must be untouched
	var stored entity.Drug
	require.NoError(t, e.db.First(&stored, created.ID).Error)
	assert.Equal(t, "examplinib", stored.InternationalNonProprietaryName)
	assert.Equal(t, entity.StatusPhaseI, stored.DevelopmentStatus)
}

func TestDrugUpdateKeepsOwningAffiliation(t *testing.T) {
	e := newEnv(t)
	affiliationID, userID := e.seedMember(t, "Helix Labs")

	created, err := e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
	})
	require.NoError(t, err)

	updated, err := e.drugs.Update(context.Background(), userID, created.ID, &dto.UpdateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
		DevelopmentStatus:               string(entity.StatusApproved),
	})
	require.NoError(t, err)

	assert.Equal(t, affiliationID, updated.AffiliationID)
	assert.Equal(t, string(entity.StatusApproved), updated.DevelopmentStatus)
}

func TestDrugDeleteBlockedByTrials(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")

	drug, err := e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
	})
	require.NoError(t, err)

	_, err = e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:     "EXAMPLE-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		DrugID:    drug.ID,
	})
	require.NoError(t, err)

	err = e.drugs.Delete(context.Background(), userID, drug.ID)
	assert.ErrorIs(t, err, ErrDrugInUse)
}

func TestDrugListPaginationClampsOutOfRangePages(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	_, otherID := e.seedMember(t, "Vertex Biotech")

	for i := 0; i < 11; i++ {
		_, err := e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{
			InternationalNonProprietaryName: fmt.Sprintf("compound-%02d", i),
		})
		require.NoError(t, err)
	}
	// A drug from another affiliation must never appear in the listing
	_, err := e.drugs.Create(context.Background(), otherID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "outsider-drug",
	})
	require.NoError(t, err)

	list, meta, err := e.drugs.ListMine(context.Background(), userID, 1)
	require.NoError(t, err)
	assert.Len(t, list.Drugs, 10)
	assert.Equal(t, int64(11), list.Total)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 2, meta.TotalPages)

	// Page 99 clamps to the last page instead of erroring
	list, meta, err = e.drugs.ListMine(context.Background(), userID, 99)
	require.NoError(t, err)
	assert.Len(t, list.Drugs, 1)
	assert.Equal(t, 2, meta.Page)

	// Page 0 clamps to the first page
	_, meta, err = e.drugs.ListMine(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
}

func TestDrugListMineRequiresAffiliation(t *testing.T) {
	e := newEnv(t)
	userID := e.seedUnaffiliated(t, "nobody@example.org")

	_, _, err := e.drugs.ListMine(context.Background(), userID, 1)
	assert.ErrorIs(t, err, policy.ErrUnaffiliated)
}

func TestDrugGetNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.drugs.GetByID(context.Background(), nil, 12345)
	assert.ErrorIs(t, err, ErrDrugNotFound)
}

func TestDrugDetailReportsCanModifyPerViewer(t *testing.T) {
	e := newEnv(t)
	_, ownerID := e.seedMember(t, "Helix Labs")
	_, outsiderID := e.seedMember(t, "Vertex Biotech")

	created, err := e.drugs.Create(context.Background(), ownerID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: "examplinib",
	})
	require.NoError(t, err)

	asOwner, err := e.drugs.GetByID(context.Background(), &ownerID, created.ID)
	require.NoError(t, err)
	assert.True(t, asOwner.CanModify)

	asOutsider, err := e.drugs.GetByID(context.Background(), &outsiderID, created.ID)
	require.NoError(t, err)
	assert.False(t, asOutsider.CanModify)

	anonymous, err := e.drugs.GetByID(context.Background(), nil, created.ID)
	require.NoError(t, err)
	assert.False(t, anonymous.CanModify)
}
