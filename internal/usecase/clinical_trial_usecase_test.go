package usecase

import (
	"context"
	"testing"

	"drug-insights-hub/internal/delivery/dto"
	"drug-insights-hub/internal/domain/entity"
	"drug-insights-hub/internal/policy"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *env) seedDrug(t *testing.T, userID uuid.UUID, inn string) uint {
	t.Helper()
	drug, err := e.drugs.Create(context.Background(), userID, &dto.CreateDrugRequest{
		InternationalNonProprietaryName: inn,
	})
	require.NoError(t, err)
	return drug.ID
}

func TestClinicalTrialCreateRejectsReversedDates(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	drugID := e.seedDrug(t, userID, "examplinib")

	_, err := e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:     "EXAMPLE-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-12-31",
		EndDate:   "2026-01-01",
		DrugID:    drugID,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "end_date")

	// Equal start and end dates are allowed
	trial, err := e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:     "EXAMPLE-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-06-15",
		EndDate:   "2026-06-15",
		DrugID:    drugID,
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-15", trial.StartDate)
	assert.Equal(t, "2026-06-15", trial.EndDate)
}

func TestClinicalTrialCreateRejectsForeignDrug(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	_, outsiderID := e.seedMember(t, "Vertex Biotech")
	foreignDrugID := e.seedDrug(t, outsiderID, "outsidernib")

	_, err := e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:     "EXAMPLE-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		DrugID:    foreignDrugID,
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "drug_id")
}

func TestClinicalTrialCreateWithParticipants(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	drugID := e.seedDrug(t, userID, "examplinib")
	colleagueID := e.seedUnaffiliated(t, "colleague@example.org")

	trial, err := e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:          "EXAMPLE-1",
		Phase:          string(entity.StatusPhaseII),
		StartDate:      "2026-01-01",
		EndDate:        "2026-12-31",
		DrugID:         drugID,
		ParticipantIDs: []uuid.UUID{userID, colleagueID},
	})
	require.NoError(t, err)
	assert.Len(t, trial.Participants, 2)

	// Unknown participant ids are rejected
	_, err = e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:          "EXAMPLE-2",
		Phase:          string(entity.StatusPhaseII),
		StartDate:      "2026-01-01",
		EndDate:        "2026-12-31",
		DrugID:         drugID,
		ParticipantIDs: []uuid.UUID{uuid.New()},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "participant_ids")
}

func TestClinicalTrialUpdateAcrossAffiliationsIsForbidden(t *testing.T) {
	e := newEnv(t)
	_, ownerID := e.seedMember(t, "Helix Labs")
	_, outsiderID := e.seedMember(t, "Vertex Biotech")
	drugID := e.seedDrug(t, ownerID, "examplinib")

	created, err := e.trials.Create(context.Background(), ownerID, &dto.CreateClinicalTrialRequest{
		Title:     "EXAMPLE-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		DrugID:    drugID,
	})
	require.NoError(t, err)

	_, err = e.trials.Update(context.Background(), outsiderID, created.ID, &dto.UpdateClinicalTrialRequest{
		Title:     "HIJACKED",
		Phase:     string(entity.StatusPhaseIII),
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
	})
	assert.ErrorIs(t, err, policy.ErrForbidden)

	var stored entity.ClinicalTrial
	require.NoError(t, e.db.First(&stored, created.ID).Error)
	assert.Equal(t, "EXAMPLE-1", stored.Title)
}

func TestClinicalTrialUpdateKeepsDrugReference(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	drugID := e.seedDrug(t, userID, "examplinib")

	created, err := e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:     "EXAMPLE-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		DrugID:    drugID,
	})
	require.NoError(t, err)

	updated, err := e.trials.Update(context.Background(), userID, created.ID, &dto.UpdateClinicalTrialRequest{
		Title:     "EXAMPLE-1b",
		Phase:     string(entity.StatusPhaseII),
		StartDate: "2026-02-01",
		EndDate:   "2026-11-30",
	})
	require.NoError(t, err)
	assert.Equal(t, drugID, updated.DrugID)
	assert.Equal(t, string(entity.StatusPhaseII), updated.Phase)
}

func TestClinicalTrialDeleteRemovesParticipantLinks(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	drugID := e.seedDrug(t, userID, "examplinib")

	created, err := e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:          "EXAMPLE-1",
		Phase:          string(entity.StatusPhaseI),
		StartDate:      "2026-01-01",
		EndDate:        "2026-12-31",
		DrugID:         drugID,
		ParticipantIDs: []uuid.UUID{userID},
	})
	require.NoError(t, err)

	require.NoError(t, e.trials.Delete(context.Background(), userID, created.ID))

	var links int64
	require.NoError(t, e.db.Table("clinical_trial_participants").Count(&links).Error)
	assert.Zero(t, links)

	_, err = e.trials.GetByID(context.Background(), nil, created.ID)
	assert.ErrorIs(t, err, ErrTrialNotFound)
}
