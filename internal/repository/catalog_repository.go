package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"gorm.io/gorm"
)

// Catalog repositories back the reusable reference lists used when composing
// proposals: fixed operational costs, payment terms and origin/destination
// locations.

type OperationalCostRepository struct {
	db *gorm.DB
}

func NewOperationalCostRepository(db *gorm.DB) *OperationalCostRepository {
	return &OperationalCostRepository{db: db}
}

func (r *OperationalCostRepository) Create(ctx context.Context, cost *domain.OperationalCost) error {
	return r.db.WithContext(ctx).Create(cost).Error
}

func (r *OperationalCostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OperationalCost, error) {
	var cost domain.OperationalCost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&cost).Error
	if err != nil {
		return nil, err
	}
	return &cost, nil
}

// GetByIDs resolves a set of catalog entries, preserving no particular order
func (r *OperationalCostRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.OperationalCost, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var costs []domain.OperationalCost
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&costs).Error
	return costs, err
}

func (r *OperationalCostRepository) Update(ctx context.Context, cost *domain.OperationalCost) error {
	return r.db.WithContext(ctx).Save(cost).Error
}

func (r *OperationalCostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.OperationalCost{}, "id = ?", id).Error
}

func (r *OperationalCostRepository) List(ctx context.Context) ([]domain.OperationalCost, error) {
	var costs []domain.OperationalCost
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&costs).Error
	return costs, err
}

type PaymentTermRepository struct {
	db *gorm.DB
}

func NewPaymentTermRepository(db *gorm.DB) *PaymentTermRepository {
	return &PaymentTermRepository{db: db}
}

func (r *PaymentTermRepository) Create(ctx context.Context, term *domain.PaymentTerm) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *PaymentTermRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentTerm, error) {
	var term domain.PaymentTerm
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&term).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *PaymentTermRepository) Update(ctx context.Context, term *domain.PaymentTerm) error {
	return r.db.WithContext(ctx).Save(term).Error
}

func (r *PaymentTermRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PaymentTerm{}, "id = ?", id).Error
}

func (r *PaymentTermRepository) List(ctx context.Context) ([]domain.PaymentTerm, error) {
	var terms []domain.PaymentTerm
	err := r.db.WithContext(ctx).Order("dias ASC").Find(&terms).Error
	return terms, err
}

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, location *domain.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var location domain.Location
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) Update(ctx context.Context, location *domain.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Location{}, "id = ?", id).Error
}

func (r *LocationRepository) List(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&locations).Error
	return locations, err
}
