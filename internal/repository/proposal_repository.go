package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"gorm.io/gorm"
)

// ProposalFilter narrows proposal listings
type ProposalFilter struct {
	Status     domain.ProposalStatus
	Tipo       domain.ProposalType
	LeadID     *uuid.UUID
	VendedorID *uuid.UUID
	Search     string
}

type ProposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *ProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	var proposal domain.Proposal
	err := r.db.WithContext(ctx).
		Preload("Lead").
		Preload("Vendedor").
		Preload("Custos").
		Preload("DespesasVariaveis").
		Where("id = ?", id).
		First(&proposal).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *ProposalRepository) Update(ctx context.Context, proposal *domain.Proposal) error {
	return r.db.WithContext(ctx).Save(proposal).Error
}

func (r *ProposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Proposal{}, "id = ?", id).Error
}

func (r *ProposalRepository) List(ctx context.Context, page, pageSize int, filter ProposalFilter) ([]domain.Proposal, int64, error) {
	var proposals []domain.Proposal
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Proposal{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tipo != "" {
		query = query.Where("tipo = ?", filter.Tipo)
	}
	if filter.LeadID != nil {
		query = query.Where("lead_id = ?", *filter.LeadID)
	}
	if filter.VendedorID != nil {
		query = query.Where("vendedor_id = ?", *filter.VendedorID)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(origem) LIKE ? OR LOWER(destino) LIKE ? OR LOWER(processo_interno) LIKE ? OR LOWER(crt_identifier) LIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Lead").
		Preload("Vendedor").
		Preload("Custos").
		Preload("DespesasVariaveis").
		Offset(offset).Limit(pageSize).
		Order("created_at DESC").
		Find(&proposals).Error

	return proposals, total, err
}

// CrtExists reports whether another proposal already carries the given
// transport document identifier, compared case-insensitively.
func (r *ProposalRepository) CrtExists(ctx context.Context, crt string, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Proposal{}).
		Where("LOWER(crt_identifier) = ?", strings.ToLower(crt)).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

// ListForStatements returns every accepted or finalized proposal with a
// recorded acceptance date. Month windows and rollover are resolved by the
// commission allocator, which needs proposals from earlier months too.
func (r *ProposalRepository) ListForStatements(ctx context.Context) ([]domain.Proposal, error) {
	var proposals []domain.Proposal
	err := r.db.WithContext(ctx).
		Where("status IN ?", []domain.ProposalStatus{domain.ProposalAceita, domain.ProposalFinalizada}).
		Where("data_aceite IS NOT NULL").
		Order("data_aceite ASC").
		Find(&proposals).Error
	return proposals, err
}

// ListAccepted returns all accepted and finalized proposals, preloading the
// lead for report rows
func (r *ProposalRepository) ListAccepted(ctx context.Context) ([]domain.Proposal, error) {
	var proposals []domain.Proposal
	err := r.db.WithContext(ctx).
		Preload("Lead").
		Where("status IN ?", []domain.ProposalStatus{domain.ProposalAceita, domain.ProposalFinalizada}).
		Order("data_aceite ASC").
		Find(&proposals).Error
	return proposals, err
}

// ListRejected returns rejected proposals, preloading the lead
func (r *ProposalRepository) ListRejected(ctx context.Context) ([]domain.Proposal, error) {
	var proposals []domain.Proposal
	err := r.db.WithContext(ctx).
		Preload("Lead").
		Where("status = ?", domain.ProposalRecusada).
		Order("data_recusa DESC").
		Find(&proposals).Error
	return proposals, err
}

// ReplaceCosts swaps the proposal's cost rows of the given phase
func (r *ProposalRepository) ReplaceCosts(ctx context.Context, proposalID uuid.UUID, fase domain.CostPhase, costs []domain.ProposalCost) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposal_id = ? AND fase = ?", proposalID, fase).
			Delete(&domain.ProposalCost{}).Error; err != nil {
			return err
		}
		if len(costs) == 0 {
			return nil
		}
		for i := range costs {
			costs[i].ProposalID = proposalID
			costs[i].Fase = fase
		}
		return tx.Create(&costs).Error
	})
}

// ReplaceVariableExpenses swaps the proposal's ad hoc expense rows
func (r *ProposalRepository) ReplaceVariableExpenses(ctx context.Context, proposalID uuid.UUID, expenses []domain.VariableExpense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("proposal_id = ?", proposalID).
			Delete(&domain.VariableExpense{}).Error; err != nil {
			return err
		}
		if len(expenses) == 0 {
			return nil
		}
		for i := range expenses {
			expenses[i].ProposalID = proposalID
		}
		return tx.Create(&expenses).Error
	})
}

func (r *ProposalRepository) Count(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Proposal{}).Count(&count).Error
	return int(count), err
}
