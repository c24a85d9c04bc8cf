package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}, &models.Proposal{}))
	return db
}

func seedProjectWithProposals(t *testing.T, db *gorm.DB) (ProjectRepository, ProposalRepository, *models.Project, *models.Proposal, *models.Proposal) {
	t.Helper()
	ctx := context.Background()
	projects := NewProjectRepository(db)
	proposals := NewProposalRepository(db)

	budget := 2000.0
	project := &models.Project{
		Title:      "Marketplace revamp",
		BudgetType: models.BudgetFixed,
		Budget:     &budget,
		PostedBy:   "client-1",
	}
	require.NoError(t, projects.Create(ctx, project))

	price := 1800.0
	first := &models.Proposal{ProjectID: project.ID, Freelancer: "finn", CoverLetter: "Bid", ProposedPrice: &price}
	second := &models.Proposal{ProjectID: project.ID, Freelancer: "greta", CoverLetter: "Bid", ProposedPrice: &price}
	require.NoError(t, proposals.Create(ctx, first))
	require.NoError(t, proposals.Create(ctx, second))
	return projects, proposals, project, first, second
}

func TestDecideAcceptCascadesToProject(t *testing.T) {
	ctx := context.Background()
	projects, proposals, project, first, _ := seedProjectWithProposals(t, testDB(t))

	decided, err := proposals.Decide(ctx, first.ID, models.ProposalAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalAccepted, decided.Status)

	updated, err := projects.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectInProgress, updated.Status)
	assert.Equal(t, "finn", updated.SelectedFreelancer)
}

func TestDecideEnforcesSingleAcceptance(t *testing.T) {
	ctx := context.Background()
	_, proposals, _, first, second := seedProjectWithProposals(t, testDB(t))

	_, err := proposals.Decide(ctx, first.ID, models.ProposalAccepted)
	require.NoError(t, err)

	_, err = proposals.Decide(ctx, second.ID, models.ProposalAccepted)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)

	// Rejecting the loser still works.
	decided, err := proposals.Decide(ctx, second.ID, models.ProposalRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ProposalRejected, decided.Status)
}

func TestAcceptedProposalsUniquePerProjectInSchema(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	_, proposals, _, first, second := seedProjectWithProposals(t, db)

	_, err := proposals.Decide(ctx, first.ID, models.ProposalAccepted)
	require.NoError(t, err)

	// A write that sidesteps the repository's pre-check still cannot produce
	// a second accepted proposal: the partial unique index rejects it.
	err = db.Model(&models.Proposal{}).
		Where("id = ?", second.ID).
		Update("status", models.ProposalAccepted).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Pending siblings on the same project are untouched by the index.
	price := 1700.0
	third := &models.Proposal{ProjectID: first.ProjectID, Freelancer: "hana", CoverLetter: "Bid", ProposedPrice: &price}
	require.NoError(t, proposals.Create(ctx, third))
}

func TestDecideTerminalProposalsAreImmutable(t *testing.T) {
	ctx := context.Background()
	_, proposals, _, first, _ := seedProjectWithProposals(t, testDB(t))

	_, err := proposals.Decide(ctx, first.ID, models.ProposalRejected)
	require.NoError(t, err)

	for _, target := range []models.ProposalStatus{models.ProposalAccepted, models.ProposalRejected, models.ProposalPending} {
		_, err = proposals.Decide(ctx, first.ID, target)
		require.Error(t, err, "transition to %s must fail", target)
	}
}

func TestDecideMissingProposal(t *testing.T) {
	_, proposals, _, _, _ := seedProjectWithProposals(t, testDB(t))

	_, err := proposals.Decide(context.Background(), "missing", models.ProposalAccepted)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
