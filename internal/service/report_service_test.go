package service_test

import (
	"context"
	"testing"

	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/service"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) *service.ReportService {
	return service.NewReportService(
		repository.NewProposalRepository(db),
		repository.NewLeadRepository(db),
		zap.NewNop(),
	)
}

func TestReportService_MonthlySummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)

	inMonth := testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 5000, testutil.Date(2026, 4, 3))
	inMonth.FreteReais = 50000
	inMonth.TotalImpostos = 1800
	require.NoError(t, db.Save(inMonth).Error)

	loss := testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, -700, testutil.Date(2026, 4, 20))
	loss.Tipo = domain.ProposalInternacional
	require.NoError(t, db.Save(loss).Error)

	// Accepted in another month, excluded from the summary
	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 9999, testutil.Date(2026, 3, 15))

	report, err := svc.MonthlySummary(ctx, testutil.Date(2026, 4, 1))
	require.NoError(t, err)

	assert.Equal(t, "2026-04", report.Mes)
	assert.Equal(t, 2, report.TotalPropostas)
	assert.Equal(t, 1, report.TotalNacional)
	assert.Equal(t, 1, report.TotalInternacional)
	assert.InDelta(t, 50000.0, report.FaturamentoTotal, 0.001)
	assert.InDelta(t, 1800.0, report.ImpostosTotais, 0.001)
	assert.InDelta(t, 4300.0, report.LucroTotal, 0.001)
	assert.Equal(t, 1, report.PropostasComPrejuizo)
}

func TestReportService_ABCClassification(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)

	profits := []float64{100000, 50000, 30000, 8000, 1000}
	for i, lucro := range profits {
		lead := testutil.CreateTestLead(t, db, string(rune('A'+i))+" Transportes")
		testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, lucro, testutil.Date(2026, 4, 3))
	}

	entries, err := svc.ABCClassification(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	// Ranked descending by accumulated profit: top 20% A, next 50% B, rest C
	assert.InDelta(t, 100000.0, entries[0].LucroAcumulado, 0.001)
	assert.Equal(t, "A", entries[0].Classificacao)
	assert.Equal(t, "B", entries[1].Classificacao)
	assert.Equal(t, "B", entries[2].Classificacao)
	assert.Equal(t, "C", entries[3].Classificacao)
	assert.Equal(t, "C", entries[4].Classificacao)
}

func TestReportService_LossProcesses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newReportService(db)
	ctx := context.Background()

	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)

	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, 5000, testutil.Date(2026, 4, 3))
	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, -300, testutil.Date(2026, 4, 5))
	testutil.CreateAcceptedProposal(t, db, lead.ID, seller.ID, -1500, testutil.Date(2026, 4, 8))

	losses, err := svc.LossProcesses(ctx)
	require.NoError(t, err)
	require.Len(t, losses, 2)

	// Worst losses first
	assert.InDelta(t, -1500.0, losses[0].Lucro, 0.001)
	assert.InDelta(t, -300.0, losses[1].Lucro, 0.001)
	assert.Equal(t, "Transportes Alfa", losses[0].LeadName)
}
