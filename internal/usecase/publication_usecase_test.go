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

func TestPublicationCreateStampsDates(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")

	publication, err := e.publications.Create(context.Background(), userID, &dto.CreatePublicationRequest{
		Title:   "Results of EXAMPLE-1",
		Journal: "J Example Med",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, publication.PublicationDate)
	assert.NotEmpty(t, publication.ModificationDate)
	assert.True(t, publication.CanModify)
}

func TestPublicationCreateRequiresAffiliation(t *testing.T) {
	e := newEnv(t)
	userID := e.seedUnaffiliated(t, "nobody@example.org")

	_, err := e.publications.Create(context.Background(), userID, &dto.CreatePublicationRequest{
		Title: "Results of EXAMPLE-1",
	})
	assert.ErrorIs(t, err, policy.ErrUnaffiliated)
}

func TestPublicationCreateLinksAuthorsAndTrials(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	drugID := e.seedDrug(t, userID, "examplinib")

	trial, err := e.trials.Create(context.Background(), userID, &dto.CreateClinicalTrialRequest{
		Title:     "EXAMPLE-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		DrugID:    drugID,
	})
	require.NoError(t, err)

	publication, err := e.publications.Create(context.Background(), userID, &dto.CreatePublicationRequest{
		Title:     "Results of EXAMPLE-1",
		AuthorIDs: []uuid.UUID{userID},
		TrialIDs:  []uint{trial.ID},
	})
	require.NoError(t, err)
	assert.Len(t, publication.Authors, 1)
	require.Len(t, publication.Trials, 1)
	assert.Equal(t, "EXAMPLE-1", publication.Trials[0].Title)
}

func TestPublicationCreateRejectsForeignTrials(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	_, outsiderID := e.seedMember(t, "Vertex Biotech")
	foreignDrugID := e.seedDrug(t, outsiderID, "outsidernib")

	foreignTrial, err := e.trials.Create(context.Background(), outsiderID, &dto.CreateClinicalTrialRequest{
		Title:     "FOREIGN-1",
		Phase:     string(entity.StatusPhaseI),
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		DrugID:    foreignDrugID,
	})
	require.NoError(t, err)

	_, err = e.publications.Create(context.Background(), userID, &dto.CreatePublicationRequest{
		Title:    "Results of FOREIGN-1",
		TrialIDs: []uint{foreignTrial.ID},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "trial_ids")
}

func TestPublicationUpdateReplacesLinks(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")
	colleagueID := e.seedUnaffiliated(t, "colleague@example.org")

	created, err := e.publications.Create(context.Background(), userID, &dto.CreatePublicationRequest{
		Title:     "Results of EXAMPLE-1",
		AuthorIDs: []uuid.UUID{userID},
	})
	require.NoError(t, err)

	updated, err := e.publications.Update(context.Background(), userID, created.ID, &dto.UpdatePublicationRequest{
		Title:     "Results of EXAMPLE-1 (revised)",
		Journal:   "J Example Med",
		AuthorIDs: []uuid.UUID{colleagueID},
	})
	require.NoError(t, err)
	require.Len(t, updated.Authors, 1)
	assert.Equal(t, colleagueID, updated.Authors[0].ID)

	var links int64
	require.NoError(t, e.db.Table("publication_authors").Count(&links).Error)
	assert.Equal(t, int64(1), links)
}

func TestPublicationDeleteAcrossAffiliationsIsForbidden(t *testing.T) {
	e := newEnv(t)
	_, ownerID := e.seedMember(t, "Helix Labs")
	_, outsiderID := e.seedMember(t, "Vertex Biotech")

	created, err := e.publications.Create(context.Background(), ownerID, &dto.CreatePublicationRequest{
		Title: "Results of EXAMPLE-1",
	})
	require.NoError(t, err)

	err = e.publications.Delete(context.Background(), outsiderID, created.ID)
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// Owner deletion removes the row and its link rows
	require.NoError(t, e.publications.Delete(context.Background(), ownerID, created.ID))
	_, err = e.publications.GetByID(context.Background(), nil, created.ID)
	assert.ErrorIs(t, err, ErrPublicationNotFound)
}

func TestPublicationListOrderedByTitle(t *testing.T) {
	e := newEnv(t)
	_, userID := e.seedMember(t, "Helix Labs")

	for _, title := range []string{"Zeta findings", "Alpha findings", "Mid findings"} {
		_, err := e.publications.Create(context.Background(), userID, &dto.CreatePublicationRequest{Title: title})
		require.NoError(t, err)
	}

	list, meta, err := e.publications.ListMine(context.Background(), userID, 1)
	require.NoError(t, err)
	require.Len(t, list.Publications, 3)
	assert.Equal(t, "Alpha findings", list.Publications[0].Title)
	assert.Equal(t, "Mid findings", list.Publications[1].Title)
	assert.Equal(t, "Zeta findings", list.Publications[2].Title)
	assert.Equal(t, int64(3), meta.Total)
}
