package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalRepository_CrtExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProposalRepository(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)

	holder := testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 1000, testutil.Date(2026, 3, 5))
	holder.CrtIdentifier = "BR-1234"
	require.NoError(t, db.Save(holder).Error)

	// Case-insensitive match against another proposal
	taken, err := repo.CrtExists(ctx, "br-1234", uuid.New())
	require.NoError(t, err)
	assert.True(t, taken)

	// The holder itself is excluded, so re-accepting with the same CRT passes
	taken, err = repo.CrtExists(ctx, "BR-1234", holder.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.CrtExists(ctx, "BR-9999", uuid.New())
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestProposalRepository_ReplaceCosts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProposalRepository(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)
	proposal := testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 1000, testutil.Date(2026, 3, 5))

	estimados := []domain.ProposalCost{
		{Nome: "Pedágio", Valor: 300},
		{Nome: "Escolta", Valor: 1200},
	}
	require.NoError(t, repo.ReplaceCosts(ctx, proposal.ID, domain.CostPhaseEstimada, estimados))

	// Realized rows live in their own phase and never touch the estimates
	realizados := []domain.ProposalCost{
		{Nome: "Pedágio", Valor: 350},
	}
	require.NoError(t, repo.ReplaceCosts(ctx, proposal.ID, domain.CostPhaseRealizada, realizados))

	got, err := repo.GetByID(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Len(t, got.CustosEstimados(), 2)
	require.Len(t, got.CustosRealizados(), 1)
	assert.Equal(t, 350.0, got.CustosRealizados()[0].Valor)

	// Replacing a phase swaps its rows instead of appending
	require.NoError(t, repo.ReplaceCosts(ctx, proposal.ID, domain.CostPhaseRealizada, []domain.ProposalCost{
		{Nome: "Pedágio", Valor: 400},
		{Nome: "Armazenagem", Valor: 90},
	}))

	got, err = repo.GetByID(ctx, proposal.ID)
	require.NoError(t, err)
	assert.Len(t, got.CustosEstimados(), 2)
	assert.Len(t, got.CustosRealizados(), 2)
}

func TestProposalRepository_ListForStatements(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewProposalRepository(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)

	second := testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 1000, testutil.Date(2026, 3, 10))
	first := testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 2000, testutil.Date(2026, 3, 2))

	// Pending proposals and proposals without an acceptance date never count
	pending := &domain.Proposal{
		Tipo:       domain.ProposalNacional,
		LeadID:     lead.ID,
		VendedorID: seller.ID,
		Status:     domain.ProposalPendente,
	}
	require.NoError(t, db.Create(pending).Error)

	proposals, err := repo.ListForStatements(ctx)
	require.NoError(t, err)
	require.Len(t, proposals, 2)
	assert.Equal(t, first.ID, proposals[0].ID)
	assert.Equal(t, second.ID, proposals[1].ID)
}
