package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"gorm.io/gorm"
)

type WorkflowTemplateRepository struct {
	db *gorm.DB
}

func NewWorkflowTemplateRepository(db *gorm.DB) *WorkflowTemplateRepository {
	return &WorkflowTemplateRepository{db: db}
}

func (r *WorkflowTemplateRepository) Create(ctx context.Context, template *domain.WorkflowTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *WorkflowTemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowTemplate, error) {
	var template domain.WorkflowTemplate
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *WorkflowTemplateRepository) Update(ctx context.Context, template *domain.WorkflowTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *WorkflowTemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.WorkflowTemplate{}, "id = ?", id).Error
}

func (r *WorkflowTemplateRepository) List(ctx context.Context) ([]domain.WorkflowTemplate, error) {
	var templates []domain.WorkflowTemplate
	err := r.db.WithContext(ctx).Order("categoria ASC, ordem ASC, dia_offset ASC").Find(&templates).Error
	return templates, err
}

// ListActiveByCategory returns the active flow steps of one category, in
// execution order
func (r *WorkflowTemplateRepository) ListActiveByCategory(ctx context.Context, categoria domain.WorkflowCategory) ([]domain.WorkflowTemplate, error) {
	var templates []domain.WorkflowTemplate
	err := r.db.WithContext(ctx).
		Where("categoria = ? AND ativo = ?", categoria, true).
		Order("ordem ASC, dia_offset ASC").
		Find(&templates).Error
	return templates, err
}
