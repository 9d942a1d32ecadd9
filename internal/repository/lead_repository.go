package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"gorm.io/gorm"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	var lead domain.Lead
	err := r.db.WithContext(ctx).Preload("Contatos").Where("id = ?", id).First(&lead).Error
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// Update saves the lead and, when the struct carries a contact slice,
// replaces the stored contacts with it.
func (r *LeadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Contatos").Save(lead).Error; err != nil {
			return err
		}
		if lead.Contatos == nil {
			return nil
		}
		if err := tx.Where("lead_id = ?", lead.ID).Delete(&domain.LeadContact{}).Error; err != nil {
			return err
		}
		if len(lead.Contatos) == 0 {
			return nil
		}
		for i := range lead.Contatos {
			lead.Contatos[i].LeadID = lead.ID
		}
		return tx.Create(&lead.Contatos).Error
	})
}

func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Lead{}, "id = ?", id).Error
}

func (r *LeadRepository) List(ctx context.Context, page, pageSize int, search string, status domain.LeadStatus) ([]domain.Lead, int64, error) {
	var leads []domain.Lead
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Lead{})

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(empresa) LIKE ? OR LOWER(cnpj) LIKE ?", searchPattern, searchPattern)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Contatos").Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&leads).Error

	return leads, total, err
}

// ListAll returns every lead without pagination, for reports and exports
func (r *LeadRepository) ListAll(ctx context.Context) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).Order("empresa ASC").Find(&leads).Error
	return leads, err
}
