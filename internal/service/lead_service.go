package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/mapper"
	"github.com/rodolog/brokerage-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LeadService struct {
	leadRepo     *repository.LeadRepository
	templateRepo *repository.WorkflowTemplateRepository
	taskRepo     *repository.TaskRepository
	logger       *zap.Logger
}

func NewLeadService(
	leadRepo *repository.LeadRepository,
	templateRepo *repository.WorkflowTemplateRepository,
	taskRepo *repository.TaskRepository,
	logger *zap.Logger,
) *LeadService {
	return &LeadService{
		leadRepo:     leadRepo,
		templateRepo: templateRepo,
		taskRepo:     taskRepo,
		logger:       logger,
	}
}

// Create registers a lead and schedules its follow-up tasks from the active
// workflow templates of the requested category.
func (s *LeadService) Create(ctx context.Context, req *domain.CreateLeadRequest) (*domain.LeadDTO, error) {
	lead := &domain.Lead{
		Empresa:     req.Empresa,
		CNPJ:        req.CNPJ,
		Site:        req.Site,
		Segmento:    req.Segmento,
		Status:      domain.LeadStatusNovo,
		Responsavel: req.Responsavel,
	}
	if req.Status != "" {
		lead.Status = req.Status
	}
	for _, c := range req.Contatos {
		lead.Contatos = append(lead.Contatos, domain.LeadContact{
			Nome:    c.Nome,
			Email:   c.Email,
			Celular: c.Celular,
		})
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	categoria := req.Categoria
	if categoria == "" {
		categoria = domain.WorkflowComWhatsapp
	}
	if err := s.generateTasks(ctx, lead.ID, categoria); err != nil {
		// Lead is already persisted; surface the workflow failure in logs
		// instead of failing the whole creation.
		s.logger.Error("failed to generate workflow tasks",
			zap.String("lead_id", lead.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("lead created",
		zap.String("lead_id", lead.ID.String()),
		zap.String("empresa", lead.Empresa),
	)

	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) generateTasks(ctx context.Context, leadID uuid.UUID, categoria domain.WorkflowCategory) error {
	templates, err := s.templateRepo.ListActiveByCategory(ctx, categoria)
	if err != nil {
		return fmt.Errorf("failed to list workflow templates: %w", err)
	}
	if len(templates) == 0 {
		return nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	tasks := make([]domain.Task, len(templates))
	for i, t := range templates {
		tasks[i] = domain.Task{
			LeadID:         leadID,
			Tipo:           t.Tipo,
			Descricao:      t.Descricao,
			ModeloMensagem: t.ModeloMensagem,
			DataProgramada: today.AddDate(0, 0, t.DiaOffset),
			Status:         domain.TaskPendente,
		}
	}

	return s.taskRepo.CreateBatch(ctx, tasks)
}

func (s *LeadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.LeadDTO, error) {
	lead, err := s.getLead(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := mapper.ToLeadDTO(lead)
	return &dto, nil
}

func (s *LeadService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateLeadRequest) (*domain.LeadDTO, error) {
	lead, err := s.getLead(ctx, id)
	if err != nil {
		return nil, err
	}

	lead.Empresa = req.Empresa
	lead.CNPJ = req.CNPJ
	lead.Site = req.Site
	lead.Segmento = req.Segmento
	lead.Responsavel = req.Responsavel
	if req.Status != "" {
		lead.Status = req.Status
	}
	if req.Contatos != nil {
		contatos := make([]domain.LeadContact, len(req.Contatos))
		for i, c := range req.Contatos {
			contatos[i] = domain.LeadContact{
				LeadID:  lead.ID,
				Nome:    c.Nome,
				Email:   c.Email,
				Celular: c.Celular,
			}
		}
		lead.Contatos = contatos
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *LeadService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getLead(ctx, id); err != nil {
		return err
	}
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	return nil
}

func (s *LeadService) List(ctx context.Context, page, pageSize int, search string, status domain.LeadStatus) (*domain.PaginatedResponse, error) {
	leads, total, err := s.leadRepo.List(ctx, page, pageSize, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	dtos := make([]domain.LeadDTO, len(leads))
	for i := range leads {
		dtos[i] = mapper.ToLeadDTO(&leads[i])
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

func (s *LeadService) getLead(ctx context.Context, id uuid.UUID) (*domain.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}
