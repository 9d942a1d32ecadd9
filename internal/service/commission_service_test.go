package service_test

import (
	"context"
	"testing"

	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/service"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCommissionService(db *gorm.DB) *service.CommissionService {
	return service.NewCommissionService(
		repository.NewProposalRepository(db),
		repository.NewUserRepository(db),
		repository.NewLeadRepository(db),
		zap.NewNop(),
	)
}

func TestCommissionService_Statement_RolloverAndGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCommissionService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 10000, 10)

	// Accepted in March, still unbilled: rolls over into April
	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 6000, testutil.Date(2026, 3, 5))

	// Accepted in March and billed in March: consumed, never rolls over
	billed := testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 5000, testutil.Date(2026, 3, 20))
	billedAt := testutil.Date(2026, 3, 25)
	billed.Faturado = true
	billed.DataFaturado = &billedAt
	require.NoError(t, db.Save(billed).Error)

	// Accepted in April
	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 7000, testutil.Date(2026, 4, 10))
	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 1000, testutil.Date(2026, 4, 20))

	st, err := svc.Statement(ctx, seller.ID, testutil.Date(2026, 4, 1))
	require.NoError(t, err)

	assert.Equal(t, "2026-04", st.Mes)
	assert.Equal(t, 3, st.TotalEmbarques)
	assert.InDelta(t, 14000.0, st.LucroTotal, 0.001)

	// The second visible proposal crosses the 10000 goal and takes the whole
	// overflow (6000+7000-10000); the third earns its marginal slice.
	require.Len(t, st.Propostas, 3)
	assert.InDelta(t, 0.0, st.Propostas[0].Comissao, 0.001)
	assert.InDelta(t, 300.0, st.Propostas[1].Comissao, 0.001)
	assert.InDelta(t, 100.0, st.Propostas[2].Comissao, 0.001)
	assert.InDelta(t, 400.0, st.Comissao, 0.001)

	assert.InDelta(t, 100.0, st.PercentualFinanceiro, 0.001)
	assert.InDelta(t, 0.0, st.RestanteFinanceiro, 0.001)
	assert.Equal(t, "Transportes Alfa", st.Propostas[0].LeadName)
}

func TestCommissionService_MonthlyStatements(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCommissionService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	ana := testutil.CreateTestSeller(t, db, "Ana Vendedora", 0, 5)
	bruno := testutil.CreateTestSeller(t, db, "Bruno Vendedor", 0, 5)

	testutil.CreateAcceptedProposal(t, db, lead.ID, ana.ID, 2000, testutil.Date(2026, 4, 3))
	testutil.CreateAcceptedProposal(t, db, lead.ID, bruno.ID, 3000, testutil.Date(2026, 4, 7))

	statements, err := svc.MonthlyStatements(ctx, testutil.Date(2026, 4, 1))
	require.NoError(t, err)
	require.Len(t, statements, 2)

	assert.Equal(t, "Ana Vendedora", statements[0].Vendedor)
	assert.InDelta(t, 2000.0, statements[0].LucroTotal, 0.001)
	assert.Equal(t, "Bruno Vendedor", statements[1].Vendedor)
	assert.InDelta(t, 3000.0, statements[1].LucroTotal, 0.001)

	// No seller reached the volume goal, so no commission is due
	assert.Zero(t, statements[0].Comissao)
	assert.Zero(t, statements[1].Comissao)
}

func TestCommissionService_ExportCSV(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newCommissionService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)
	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 2500, testutil.Date(2026, 4, 3))

	csv, err := svc.ExportCSV(ctx, seller.ID, testutil.Date(2026, 4, 1))
	require.NoError(t, err)

	assert.Contains(t, string(csv), "Vendedor;Lead;")
	assert.Contains(t, string(csv), "Maria Silva")
	assert.Contains(t, string(csv), "Transportes Alfa")
}
