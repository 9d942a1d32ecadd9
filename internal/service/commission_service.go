package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/commission"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/mapper"
	"github.com/rodolog/brokerage-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CommissionService struct {
	proposalRepo *repository.ProposalRepository
	userRepo     *repository.UserRepository
	leadRepo     *repository.LeadRepository
	logger       *zap.Logger
}

func NewCommissionService(
	proposalRepo *repository.ProposalRepository,
	userRepo *repository.UserRepository,
	leadRepo *repository.LeadRepository,
	logger *zap.Logger,
) *CommissionService {
	return &CommissionService{
		proposalRepo: proposalRepo,
		userRepo:     userRepo,
		leadRepo:     leadRepo,
		logger:       logger,
	}
}

// MonthlyStatements computes the commission statement of every active seller
// for the given month.
func (s *CommissionService) MonthlyStatements(ctx context.Context, month time.Time) ([]domain.CommissionStatementDTO, error) {
	sellers, err := s.userRepo.ListSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	proposals, err := s.proposalRepo.ListForStatements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	leadNames, err := s.leadNames(ctx)
	if err != nil {
		return nil, err
	}

	statements := make([]domain.CommissionStatementDTO, 0, len(sellers))
	for _, seller := range sellers {
		st := commission.MonthlyStatement(seller, proposals, month)
		statements = append(statements, mapper.ToCommissionStatementDTO(&st, leadNames))
	}

	return statements, nil
}

// Statement computes the commission statement of one seller for the given month
func (s *CommissionService) Statement(ctx context.Context, vendedorID uuid.UUID, month time.Time) (*domain.CommissionStatementDTO, error) {
	seller, err := s.userRepo.GetByID(ctx, vendedorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}

	proposals, err := s.proposalRepo.ListForStatements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	leadNames, err := s.leadNames(ctx)
	if err != nil {
		return nil, err
	}

	st := commission.MonthlyStatement(*seller, proposals, month)
	dto := mapper.ToCommissionStatementDTO(&st, leadNames)
	return &dto, nil
}

// ExportCSV renders a seller's monthly statement as a semicolon-separated sheet
func (s *CommissionService) ExportCSV(ctx context.Context, vendedorID uuid.UUID, month time.Time) ([]byte, error) {
	seller, err := s.userRepo.GetByID(ctx, vendedorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}

	proposals, err := s.proposalRepo.ListForStatements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	leadNames, err := s.leadNames(ctx)
	if err != nil {
		return nil, err
	}

	st := commission.MonthlyStatement(*seller, proposals, month)

	s.logger.Info("commission statement exported",
		zap.String("vendedor_id", vendedorID.String()),
		zap.String("mes", month.Format("2006-01")),
		zap.Int("propostas", len(st.Itens)),
	)

	return commission.StatementCSV(st, leadNames), nil
}

func (s *CommissionService) leadNames(ctx context.Context) (map[uuid.UUID]string, error) {
	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	names := make(map[uuid.UUID]string, len(leads))
	for _, l := range leads {
		names[l.ID] = l.Empresa
	}
	return names, nil
}
