package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/repository"
	"go.uber.org/zap"
)

type ReportService struct {
	proposalRepo *repository.ProposalRepository
	leadRepo     *repository.LeadRepository
	logger       *zap.Logger
}

func NewReportService(
	proposalRepo *repository.ProposalRepository,
	leadRepo *repository.LeadRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		proposalRepo: proposalRepo,
		leadRepo:     leadRepo,
		logger:       logger,
	}
}

// MonthlySummary aggregates accepted and finalized proposals of one calendar
// month into revenue, profit and tax totals.
func (s *ReportService) MonthlySummary(ctx context.Context, month time.Time) (*domain.MonthlyReportDTO, error) {
	proposals, err := s.proposalRepo.ListAccepted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	report := &domain.MonthlyReportDTO{
		Mes: fmt.Sprintf("%04d-%02d", month.Year(), int(month.Month())),
	}

	for i := range proposals {
		p := &proposals[i]
		if p.DataAceite == nil || !sameMonth(*p.DataAceite, month) {
			continue
		}

		report.TotalPropostas++
		if p.Tipo == domain.ProposalNacional {
			report.TotalNacional++
		} else {
			report.TotalInternacional++
		}

		report.FaturamentoTotal += p.FreteReais
		report.ImpostosTotais += p.TotalImpostos

		lucro := p.Profit()
		report.LucroTotal += lucro
		if lucro < 0 {
			report.PropostasComPrejuizo++
		}
	}

	return report, nil
}

// ABCClassification ranks leads by accumulated profit across their accepted
// and finalized proposals. The top 20% of ranked leads are class A, the next
// 50% class B, the remainder class C.
func (s *ReportService) ABCClassification(ctx context.Context) ([]domain.ABCEntryDTO, error) {
	proposals, err := s.proposalRepo.ListAccepted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	names := make(map[uuid.UUID]string, len(leads))
	for _, l := range leads {
		names[l.ID] = l.Empresa
	}

	accumulated := make(map[uuid.UUID]float64)
	for i := range proposals {
		p := &proposals[i]
		accumulated[p.LeadID] += p.Profit()
	}

	entries := make([]domain.ABCEntryDTO, 0, len(accumulated))
	for leadID, lucro := range accumulated {
		entries = append(entries, domain.ABCEntryDTO{
			LeadID:         leadID,
			Empresa:        names[leadID],
			LucroAcumulado: lucro,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LucroAcumulado > entries[j].LucroAcumulado
	})

	total := len(entries)
	for i := range entries {
		percentile := float64(i+1) / float64(total) * 100
		switch {
		case percentile <= 20:
			entries[i].Classificacao = "A"
		case percentile <= 70:
			entries[i].Classificacao = "B"
		default:
			entries[i].Classificacao = "C"
		}
	}

	return entries, nil
}

// LossProcesses lists accepted and finalized proposals whose profit is
// negative, for operational review.
func (s *ReportService) LossProcesses(ctx context.Context) ([]domain.LossProcessDTO, error) {
	proposals, err := s.proposalRepo.ListAccepted(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	var losses []domain.LossProcessDTO
	for i := range proposals {
		p := &proposals[i]
		lucro := p.Profit()
		if lucro >= 0 {
			continue
		}

		entry := domain.LossProcessDTO{
			ProposalID:      p.ID,
			ProcessoInterno: p.ProcessoInterno,
			CrtIdentifier:   p.CrtIdentifier,
			Lucro:           lucro,
			Status:          p.Status,
		}
		if p.Lead != nil {
			entry.LeadName = p.Lead.Empresa
		}
		losses = append(losses, entry)
	}

	sort.SliceStable(losses, func(i, j int) bool {
		return losses[i].Lucro < losses[j].Lucro
	})

	return losses, nil
}

func sameMonth(t, month time.Time) bool {
	return t.Year() == month.Year() && t.Month() == month.Month()
}
