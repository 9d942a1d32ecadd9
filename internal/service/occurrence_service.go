package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/mapper"
	"github.com/rodolog/brokerage-api/internal/repository"
)

type OccurrenceService struct {
	occurrenceRepo *repository.OccurrenceRepository
	leadRepo       *repository.LeadRepository
}

func NewOccurrenceService(
	occurrenceRepo *repository.OccurrenceRepository,
	leadRepo *repository.LeadRepository,
) *OccurrenceService {
	return &OccurrenceService{
		occurrenceRepo: occurrenceRepo,
		leadRepo:       leadRepo,
	}
}

func (s *OccurrenceService) Create(ctx context.Context, req *domain.OccurrenceRequest) (*domain.OccurrenceDTO, error) {
	if _, err := s.leadRepo.GetByID(ctx, req.LeadID); err != nil {
		return nil, notFoundOr(err, "failed to get lead")
	}

	date, err := time.ParseInLocation("2006-01-02", req.DataOcorrencia, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: dataOcorrencia", ErrInvalidInput)
	}

	occurrence := &domain.Occurrence{
		LeadID:         req.LeadID,
		Tipo:           req.Tipo,
		Titulo:         req.Titulo,
		Descricao:      req.Descricao,
		DataOcorrencia: date,
	}

	if err := s.occurrenceRepo.Create(ctx, occurrence); err != nil {
		return nil, fmt.Errorf("failed to create occurrence: %w", err)
	}

	dto := mapper.ToOccurrenceDTO(occurrence)
	return &dto, nil
}

func (s *OccurrenceService) List(ctx context.Context, leadID *uuid.UUID, tipo domain.OccurrenceType) ([]domain.OccurrenceDTO, error) {
	occurrences, err := s.occurrenceRepo.List(ctx, leadID, tipo)
	if err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}

	dtos := make([]domain.OccurrenceDTO, len(occurrences))
	for i := range occurrences {
		dtos[i] = mapper.ToOccurrenceDTO(&occurrences[i])
	}
	return dtos, nil
}

func (s *OccurrenceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.occurrenceRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "failed to get occurrence")
	}
	if err := s.occurrenceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete occurrence: %w", err)
	}
	return nil
}
