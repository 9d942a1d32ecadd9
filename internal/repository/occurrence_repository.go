package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"gorm.io/gorm"
)

type OccurrenceRepository struct {
	db *gorm.DB
}

func NewOccurrenceRepository(db *gorm.DB) *OccurrenceRepository {
	return &OccurrenceRepository{db: db}
}

func (r *OccurrenceRepository) Create(ctx context.Context, occurrence *domain.Occurrence) error {
	return r.db.WithContext(ctx).Create(occurrence).Error
}

func (r *OccurrenceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Occurrence, error) {
	var occurrence domain.Occurrence
	err := r.db.WithContext(ctx).Preload("Lead").Where("id = ?", id).First(&occurrence).Error
	if err != nil {
		return nil, err
	}
	return &occurrence, nil
}

func (r *OccurrenceRepository) Update(ctx context.Context, occurrence *domain.Occurrence) error {
	return r.db.WithContext(ctx).Save(occurrence).Error
}

func (r *OccurrenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Occurrence{}, "id = ?", id).Error
}

func (r *OccurrenceRepository) List(ctx context.Context, leadID *uuid.UUID, tipo domain.OccurrenceType) ([]domain.Occurrence, error) {
	var occurrences []domain.Occurrence
	query := r.db.WithContext(ctx).Preload("Lead")

	if leadID != nil {
		query = query.Where("lead_id = ?", *leadID)
	}
	if tipo != "" {
		query = query.Where("tipo = ?", tipo)
	}

	err := query.Order("data_ocorrencia DESC").Find(&occurrences).Error
	return occurrences, err
}
