package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"github.com/rodolog/brokerage-api/internal/service"
	"github.com/rodolog/brokerage-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newProposalService(db *gorm.DB) *service.ProposalService {
	return service.NewProposalService(
		repository.NewProposalRepository(db),
		repository.NewLeadRepository(db),
		repository.NewUserRepository(db),
		repository.NewOperationalCostRepository(db),
		zap.NewNop(),
	)
}

func createProposalRequest(db *gorm.DB, t *testing.T, custoIDs ...uuid.UUID) *domain.CreateProposalRequest {
	lead := testutil.CreateTestLead(t, db, "Transportes Alfa")
	seller := testutil.CreateTestSeller(t, db, "Maria Silva", 0, 10)

	return &domain.CreateProposalRequest{
		Tipo:            domain.ProposalInternacional,
		LeadID:          lead.ID,
		VendedorID:      seller.ID,
		Origem:          "São Paulo",
		Destino:         "Buenos Aires",
		KmNacional:      100,
		KmInternacional: 300,
		FreteDolar:      10000,
		Ptax:            5,
		FreteiroReais:   30000,
		CustosIDs:       custoIDs,
	}
}

func TestProposalService_Create_FreezesSnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)
	ctx := context.Background()

	costRepo := repository.NewOperationalCostRepository(db)
	cost := &domain.OperationalCost{Nome: "Pedágio", Valor: 500}
	require.NoError(t, costRepo.Create(ctx, cost))

	dto, err := svc.Create(ctx, createProposalRequest(db, t, cost.ID))
	require.NoError(t, err)

	assert.Equal(t, domain.ProposalPendente, dto.Status)
	assert.InDelta(t, 50000.0, dto.FreteReais, 0.001)
	assert.InDelta(t, 1440.0, dto.ImpostoIRCS, 0.001)
	assert.InDelta(t, 456.25, dto.ImpostoPisCofins, 0.001)
	assert.InDelta(t, 1896.25, dto.TotalImpostos, 0.001)
	assert.InDelta(t, 30500.0, dto.TotalGastos, 0.001)
	assert.InDelta(t, 17603.75, dto.LucroEstimado, 0.001)
	require.Len(t, dto.CustosSelecionados, 1)
	assert.Equal(t, 500.0, dto.CustosSelecionados[0].Valor)

	// Editing the catalog entry never changes the frozen snapshot
	cost.Valor = 9999
	require.NoError(t, costRepo.Update(ctx, cost))

	got, err := svc.GetByID(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got.CustosSelecionados[0].Valor)
	assert.InDelta(t, 17603.75, got.LucroEstimado, 0.001)
}

func TestProposalService_Create_UnknownCost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)

	_, err := svc.Create(context.Background(), createProposalRequest(db, t, uuid.New()))
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestProposalService_Accept_Validations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)

	// Internal process number is mandatory
	_, err = svc.Accept(ctx, dto.ID, &domain.AcceptProposalRequest{ProcessoInterno: "   "})
	assert.ErrorIs(t, err, service.ErrProcessoInternoRequired)

	// International proposals require a CRT
	_, err = svc.Accept(ctx, dto.ID, &domain.AcceptProposalRequest{ProcessoInterno: "PROC-001"})
	assert.ErrorIs(t, err, service.ErrCrtRequired)

	accepted, err := svc.Accept(ctx, dto.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-001",
		CrtIdentifier:   "BR-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalAceita, accepted.Status)
	assert.NotEmpty(t, accepted.DataAceite)

	// Accepting twice is rejected
	_, err = svc.Accept(ctx, dto.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-001",
		CrtIdentifier:   "BR-1234",
	})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestProposalService_Accept_CrtTakenCaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)
	ctx := context.Background()

	first, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)
	_, err = svc.Accept(ctx, first.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-001",
		CrtIdentifier:   "BR-1234",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)
	_, err = svc.Accept(ctx, second.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-002",
		CrtIdentifier:   "br-1234",
	})
	assert.ErrorIs(t, err, service.ErrCrtTaken)
}

func TestProposalService_Finalize(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)

	// Finalizing a pending proposal is rejected
	_, err = svc.Finalize(ctx, dto.ID, &domain.FinalizeProposalRequest{})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	_, err = svc.Accept(ctx, dto.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-001",
		CrtIdentifier:   "BR-1234",
	})
	require.NoError(t, err)

	finalized, err := svc.Finalize(ctx, dto.ID, &domain.FinalizeProposalRequest{
		CustosFixosReais: []domain.ProposalCostRequest{
			{Nome: "Pedágio", Valor: 600},
		},
		DespesasVariaveis: []domain.VariableExpenseRequest{
			{Nome: "Diária extra", Valor: 400},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ProposalFinalizada, finalized.Status)
	require.NotNil(t, finalized.LucroReal)
	// Revenue and taxes carry over from creation; only costs are realized:
	// (50000 - 31000) - 1896.25
	assert.InDelta(t, 17103.75, *finalized.LucroReal, 0.001)
	assert.NotEmpty(t, finalized.DataFinalizacao)
	require.Len(t, finalized.CustosFixosReais, 1)
	require.Len(t, finalized.DespesasVariaveis, 1)
}

func TestProposalService_Reject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalRecusada, rejected.Status)
	assert.NotEmpty(t, rejected.DataRecusa)

	_, err = svc.Reject(ctx, dto.ID)
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestProposalService_Reject_AfterAccept(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)

	_, err = svc.Accept(ctx, dto.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-001",
		CrtIdentifier:   "BR-1234",
	})
	require.NoError(t, err)

	// An accepted proposal can still fall through
	rejected, err := svc.Reject(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalRecusada, rejected.Status)
	assert.NotEmpty(t, rejected.DataRecusa)

	// A finalized proposal cannot
	other, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)
	_, err = svc.Accept(ctx, other.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-002",
		CrtIdentifier:   "BR-5678",
	})
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, other.ID, &domain.FinalizeProposalRequest{})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, other.ID)
	assert.ErrorIs(t, err, service.ErrInvalidStatus)
}

func TestProposalService_SetFaturado(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := newProposalService(db)
	ctx := context.Background()

	dto, err := svc.Create(ctx, createProposalRequest(db, t))
	require.NoError(t, err)

	// Billing a pending proposal is rejected
	_, err = svc.SetFaturado(ctx, dto.ID, &domain.SetFaturadoRequest{Faturado: true})
	assert.ErrorIs(t, err, service.ErrInvalidStatus)

	_, err = svc.Accept(ctx, dto.ID, &domain.AcceptProposalRequest{
		ProcessoInterno: "PROC-001",
		CrtIdentifier:   "BR-1234",
	})
	require.NoError(t, err)

	billed, err := svc.SetFaturado(ctx, dto.ID, &domain.SetFaturadoRequest{Faturado: true})
	require.NoError(t, err)
	assert.True(t, billed.Faturado)
	assert.NotEmpty(t, billed.DataFaturado)

	unbilled, err := svc.SetFaturado(ctx, dto.ID, &domain.SetFaturadoRequest{Faturado: false})
	require.NoError(t, err)
	assert.False(t, unbilled.Faturado)
	assert.Empty(t, unbilled.DataFaturado)
}
