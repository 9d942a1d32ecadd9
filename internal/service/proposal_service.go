package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/mapper"
	"github.com/rodolog/brokerage-api/internal/pricing"
	"github.com/rodolog/brokerage-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProposalService struct {
	proposalRepo *repository.ProposalRepository
	leadRepo     *repository.LeadRepository
	userRepo     *repository.UserRepository
	costRepo     *repository.OperationalCostRepository
	logger       *zap.Logger
}

func NewProposalService(
	proposalRepo *repository.ProposalRepository,
	leadRepo *repository.LeadRepository,
	userRepo *repository.UserRepository,
	costRepo *repository.OperationalCostRepository,
	logger *zap.Logger,
) *ProposalService {
	return &ProposalService{
		proposalRepo: proposalRepo,
		leadRepo:     leadRepo,
		userRepo:     userRepo,
		costRepo:     costRepo,
		logger:       logger,
	}
}

// Create registers a new proposal and freezes its financial snapshot. The
// selected operational costs are copied by value, so later catalog edits never
// change this proposal's numbers.
func (s *ProposalService) Create(ctx context.Context, req *domain.CreateProposalRequest) (*domain.ProposalDTO, error) {
	if _, err := s.leadRepo.GetByID(ctx, req.LeadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lead", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	if _, err := s.userRepo.GetByID(ctx, req.VendedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vendedor", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get vendedor: %w", err)
	}

	costs, err := s.costRepo.GetByIDs(ctx, req.CustosIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve operational costs: %w", err)
	}
	if len(costs) != len(req.CustosIDs) {
		return nil, fmt.Errorf("%w: operational cost", ErrNotFound)
	}

	custoValues := make([]float64, len(costs))
	snapshots := make([]domain.ProposalCost, len(costs))
	for i, c := range costs {
		custoValues[i] = c.Valor
		costID := c.ID
		snapshots[i] = domain.ProposalCost{
			CostID: &costID,
			Nome:   c.Nome,
			Valor:  c.Valor,
			Fase:   domain.CostPhaseEstimada,
		}
	}

	snap := pricing.Calculate(pricing.Input{
		FreteDolar:       req.FreteDolar,
		Ptax:             req.Ptax,
		ValorMercadoria:  req.ValorMercadoria,
		SeguroPercentual: req.SeguroPercentual,
		FreteiroReais:    req.FreteiroReais,
		CustosFixos:      custoValues,
		KmNacional:       req.KmNacional,
		KmInternacional:  req.KmInternacional,
	})

	proposal := &domain.Proposal{
		Tipo:       req.Tipo,
		LeadID:     req.LeadID,
		VendedorID: req.VendedorID,

		Origem:          req.Origem,
		Destino:         req.Destino,
		KmNacional:      req.KmNacional,
		KmInternacional: req.KmInternacional,

		FreteDolar:       req.FreteDolar,
		PtaxAplicada:     req.Ptax,
		ValorMercadoria:  req.ValorMercadoria,
		SeguroPercentual: req.SeguroPercentual,
		PrazoPagamentoID: req.PrazoPagamentoID,
		TipoCaminhao:     req.TipoCaminhao,
		Toneladas:        req.Toneladas,
		FreteiroReais:    req.FreteiroReais,

		FreteReais:       snap.FreteReais,
		SeguroFinal:      snap.SeguroFinal,
		TotalGastos:      snap.TotalGastos,
		LucroBruto:       snap.LucroBruto,
		ImpostoIRCS:      snap.ImpostoIRCS,
		ImpostoPisCofins: snap.ImpostoPisCofins,
		TotalImpostos:    snap.TotalImpostos,
		LucroEstimado:    snap.LucroLiquido,

		Status: domain.ProposalPendente,
		Custos: snapshots,
	}

	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	s.logger.Info("proposal created",
		zap.String("proposal_id", proposal.ID.String()),
		zap.String("tipo", string(proposal.Tipo)),
		zap.Float64("lucro_estimado", proposal.LucroEstimado),
	)

	return s.getDTO(ctx, proposal.ID)
}

func (s *ProposalService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProposalDTO, error) {
	return s.getDTO(ctx, id)
}

func (s *ProposalService) List(ctx context.Context, page, pageSize int, filter repository.ProposalFilter) (*domain.PaginatedResponse, error) {
	proposals, total, err := s.proposalRepo.List(ctx, page, pageSize, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	dtos := make([]domain.ProposalDTO, len(proposals))
	for i := range proposals {
		dtos[i] = mapper.ToProposalDTO(&proposals[i])
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// Accept moves a pending proposal to Aceita. The internal process number is
// mandatory; international proposals additionally require a CRT identifier,
// unique across all proposals regardless of letter case.
func (s *ProposalService) Accept(ctx context.Context, id uuid.UUID, req *domain.AcceptProposalRequest) (*domain.ProposalDTO, error) {
	proposal, err := s.getProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalPendente {
		return nil, ErrInvalidStatus
	}
	if strings.TrimSpace(req.ProcessoInterno) == "" {
		return nil, ErrProcessoInternoRequired
	}

	crt := strings.TrimSpace(req.CrtIdentifier)
	if proposal.Tipo == domain.ProposalInternacional && crt == "" {
		return nil, ErrCrtRequired
	}
	if crt != "" {
		taken, err := s.proposalRepo.CrtExists(ctx, crt, proposal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check CRT uniqueness: %w", err)
		}
		if taken {
			return nil, ErrCrtTaken
		}
	}

	now := time.Now().UTC()
	proposal.Status = domain.ProposalAceita
	proposal.ProcessoInterno = strings.TrimSpace(req.ProcessoInterno)
	proposal.CrtIdentifier = crt
	proposal.DataAceite = &now

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to accept proposal: %w", err)
	}

	s.logger.Info("proposal accepted",
		zap.String("proposal_id", proposal.ID.String()),
		zap.String("processo_interno", proposal.ProcessoInterno),
	)

	return s.getDTO(ctx, proposal.ID)
}

// Finalize closes an accepted proposal with realized figures. Revenue and
// taxes carry over unchanged from the creation snapshot; only the cost side is
// replaced.
func (s *ProposalService) Finalize(ctx context.Context, id uuid.UUID, req *domain.FinalizeProposalRequest) (*domain.ProposalDTO, error) {
	proposal, err := s.getProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalAceita {
		return nil, ErrInvalidStatus
	}

	realized := make([]domain.ProposalCost, len(req.CustosFixosReais))
	fixos := make([]float64, len(req.CustosFixosReais))
	for i, c := range req.CustosFixosReais {
		realized[i] = domain.ProposalCost{CostID: c.CostID, Nome: c.Nome, Valor: c.Valor}
		fixos[i] = c.Valor
	}

	expenses := make([]domain.VariableExpense, len(req.DespesasVariaveis))
	variaveis := make([]float64, len(req.DespesasVariaveis))
	for i, e := range req.DespesasVariaveis {
		expenses[i] = domain.VariableExpense{Nome: e.Nome, Valor: e.Valor}
		variaveis[i] = e.Valor
	}

	if err := s.proposalRepo.ReplaceCosts(ctx, proposal.ID, domain.CostPhaseRealizada, realized); err != nil {
		return nil, fmt.Errorf("failed to store realized costs: %w", err)
	}
	if err := s.proposalRepo.ReplaceVariableExpenses(ctx, proposal.ID, expenses); err != nil {
		return nil, fmt.Errorf("failed to store variable expenses: %w", err)
	}

	lucroReal := pricing.NetProfitActual(
		proposal.FreteReais,
		proposal.TotalImpostos,
		proposal.FreteiroReais,
		fixos,
		variaveis,
	)

	now := time.Now().UTC()
	proposal.Status = domain.ProposalFinalizada
	proposal.LucroReal = &lucroReal
	proposal.DataFinalizacao = &now

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to finalize proposal: %w", err)
	}

	s.logger.Info("proposal finalized",
		zap.String("proposal_id", proposal.ID.String()),
		zap.Float64("lucro_real", lucroReal),
	)

	return s.getDTO(ctx, proposal.ID)
}

// Reject moves a pending or accepted proposal to Recusada. Finalized
// proposals cannot be rejected.
func (s *ProposalService) Reject(ctx context.Context, id uuid.UUID) (*domain.ProposalDTO, error) {
	proposal, err := s.getProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalPendente && proposal.Status != domain.ProposalAceita {
		return nil, ErrInvalidStatus
	}

	now := time.Now().UTC()
	proposal.Status = domain.ProposalRecusada
	proposal.DataRecusa = &now

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to reject proposal: %w", err)
	}

	return s.getDTO(ctx, proposal.ID)
}

// SetFaturado toggles the billing flag of an accepted or finalized proposal.
// Billing removes the proposal from rollover in later commission months.
func (s *ProposalService) SetFaturado(ctx context.Context, id uuid.UUID, req *domain.SetFaturadoRequest) (*domain.ProposalDTO, error) {
	proposal, err := s.getProposal(ctx, id)
	if err != nil {
		return nil, err
	}

	if proposal.Status != domain.ProposalAceita && proposal.Status != domain.ProposalFinalizada {
		return nil, ErrInvalidStatus
	}

	proposal.Faturado = req.Faturado
	if req.Faturado {
		now := time.Now().UTC()
		proposal.DataFaturado = &now
	} else {
		proposal.DataFaturado = nil
	}

	if err := s.proposalRepo.Update(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to update billing flag: %w", err)
	}

	return s.getDTO(ctx, proposal.ID)
}

func (s *ProposalService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getProposal(ctx, id); err != nil {
		return err
	}
	if err := s.proposalRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}

func (s *ProposalService) getProposal(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return proposal, nil
}

func (s *ProposalService) getDTO(ctx context.Context, id uuid.UUID) (*domain.ProposalDTO, error) {
	proposal, err := s.getProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToProposalDTO(proposal)
	return &dto, nil
}
