package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/mapper"
	"github.com/rodolog/brokerage-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WorkflowService struct {
	templateRepo *repository.WorkflowTemplateRepository
	taskRepo     *repository.TaskRepository
	logger       *zap.Logger
}

func NewWorkflowService(
	templateRepo *repository.WorkflowTemplateRepository,
	taskRepo *repository.TaskRepository,
	logger *zap.Logger,
) *WorkflowService {
	return &WorkflowService{
		templateRepo: templateRepo,
		taskRepo:     taskRepo,
		logger:       logger,
	}
}

func (s *WorkflowService) List(ctx context.Context) ([]domain.WorkflowTemplateDTO, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow templates: %w", err)
	}

	dtos := make([]domain.WorkflowTemplateDTO, len(templates))
	for i := range templates {
		dtos[i] = mapper.ToWorkflowTemplateDTO(&templates[i])
	}
	return dtos, nil
}

func (s *WorkflowService) Create(ctx context.Context, req *domain.WorkflowTemplateRequest) (*domain.WorkflowTemplateDTO, error) {
	template := &domain.WorkflowTemplate{
		DiaOffset:      req.DiaOffset,
		Tipo:           req.Tipo,
		Descricao:      req.Descricao,
		ModeloMensagem: req.ModeloMensagem,
		Categoria:      domain.WorkflowComWhatsapp,
		Ordem:          req.Ordem,
		Ativo:          true,
	}
	if req.Categoria != "" {
		template.Categoria = req.Categoria
	}
	if req.Ativo != nil {
		template.Ativo = *req.Ativo
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to create workflow template: %w", err)
	}

	dto := mapper.ToWorkflowTemplateDTO(template)
	return &dto, nil
}

// Update edits a template step and propagates the new wording to pending
// future tasks generated from it. Matching uses the step's previous tipo and
// descricao; completed and overdue tasks are never touched.
func (s *WorkflowService) Update(ctx context.Context, id uuid.UUID, req *domain.WorkflowTemplateRequest) (*domain.WorkflowTemplateDTO, error) {
	template, err := s.getTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	prevTipo := template.Tipo
	prevDescricao := template.Descricao

	template.DiaOffset = req.DiaOffset
	template.Tipo = req.Tipo
	template.Descricao = req.Descricao
	template.ModeloMensagem = req.ModeloMensagem
	if req.Categoria != "" {
		template.Categoria = req.Categoria
	}
	template.Ordem = req.Ordem
	if req.Ativo != nil {
		template.Ativo = *req.Ativo
	}

	if err := s.templateRepo.Update(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to update workflow template: %w", err)
	}

	changed, err := s.taskRepo.UpdatePendingMatching(ctx, prevTipo, prevDescricao, map[string]interface{}{
		"tipo":            template.Tipo,
		"descricao":       template.Descricao,
		"modelo_mensagem": template.ModeloMensagem,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to propagate template changes: %w", err)
	}
	if changed > 0 {
		s.logger.Info("pending tasks updated from template",
			zap.String("template_id", template.ID.String()),
			zap.Int64("count", changed),
		)
	}

	dto := mapper.ToWorkflowTemplateDTO(template)
	return &dto, nil
}

func (s *WorkflowService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getTemplate(ctx, id); err != nil {
		return err
	}
	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workflow template: %w", err)
	}
	return nil
}

func (s *WorkflowService) getTemplate(ctx context.Context, id uuid.UUID) (*domain.WorkflowTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow template: %w", err)
	}
	return template, nil
}
