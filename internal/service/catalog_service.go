package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/mapper"
	"github.com/rodolog/brokerage-api/internal/repository"
	"gorm.io/gorm"
)

// CatalogService manages the reference lists used when composing proposals
type CatalogService struct {
	costRepo     *repository.OperationalCostRepository
	termRepo     *repository.PaymentTermRepository
	locationRepo *repository.LocationRepository
}

func NewCatalogService(
	costRepo *repository.OperationalCostRepository,
	termRepo *repository.PaymentTermRepository,
	locationRepo *repository.LocationRepository,
) *CatalogService {
	return &CatalogService{
		costRepo:     costRepo,
		termRepo:     termRepo,
		locationRepo: locationRepo,
	}
}

// --- Operational costs ---

func (s *CatalogService) ListCosts(ctx context.Context) ([]domain.OperationalCostDTO, error) {
	costs, err := s.costRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operational costs: %w", err)
	}
	dtos := make([]domain.OperationalCostDTO, len(costs))
	for i := range costs {
		dtos[i] = mapper.ToOperationalCostDTO(&costs[i])
	}
	return dtos, nil
}

func (s *CatalogService) CreateCost(ctx context.Context, req *domain.OperationalCostRequest) (*domain.OperationalCostDTO, error) {
	cost := &domain.OperationalCost{Nome: req.Nome, Valor: req.Valor}
	if err := s.costRepo.Create(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to create operational cost: %w", err)
	}
	dto := mapper.ToOperationalCostDTO(cost)
	return &dto, nil
}

func (s *CatalogService) UpdateCost(ctx context.Context, id uuid.UUID, req *domain.OperationalCostRequest) (*domain.OperationalCostDTO, error) {
	cost, err := s.costRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get operational cost")
	}

	cost.Nome = req.Nome
	cost.Valor = req.Valor
	if err := s.costRepo.Update(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to update operational cost: %w", err)
	}

	dto := mapper.ToOperationalCostDTO(cost)
	return &dto, nil
}

func (s *CatalogService) DeleteCost(ctx context.Context, id uuid.UUID) error {
	if _, err := s.costRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "failed to get operational cost")
	}
	if err := s.costRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete operational cost: %w", err)
	}
	return nil
}

// --- Payment terms ---

func (s *CatalogService) ListPaymentTerms(ctx context.Context) ([]domain.PaymentTermDTO, error) {
	terms, err := s.termRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment terms: %w", err)
	}
	dtos := make([]domain.PaymentTermDTO, len(terms))
	for i := range terms {
		dtos[i] = mapper.ToPaymentTermDTO(&terms[i])
	}
	return dtos, nil
}

func (s *CatalogService) CreatePaymentTerm(ctx context.Context, req *domain.PaymentTermRequest) (*domain.PaymentTermDTO, error) {
	term := &domain.PaymentTerm{Descricao: req.Descricao, Dias: req.Dias}
	if err := s.termRepo.Create(ctx, term); err != nil {
		return nil, fmt.Errorf("failed to create payment term: %w", err)
	}
	dto := mapper.ToPaymentTermDTO(term)
	return &dto, nil
}

func (s *CatalogService) UpdatePaymentTerm(ctx context.Context, id uuid.UUID, req *domain.PaymentTermRequest) (*domain.PaymentTermDTO, error) {
	term, err := s.termRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get payment term")
	}

	term.Descricao = req.Descricao
	term.Dias = req.Dias
	if err := s.termRepo.Update(ctx, term); err != nil {
		return nil, fmt.Errorf("failed to update payment term: %w", err)
	}

	dto := mapper.ToPaymentTermDTO(term)
	return &dto, nil
}

func (s *CatalogService) DeletePaymentTerm(ctx context.Context, id uuid.UUID) error {
	if _, err := s.termRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "failed to get payment term")
	}
	if err := s.termRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete payment term: %w", err)
	}
	return nil
}

// --- Locations ---

func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.LocationDTO, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	dtos := make([]domain.LocationDTO, len(locations))
	for i := range locations {
		dtos[i] = mapper.ToLocationDTO(&locations[i])
	}
	return dtos, nil
}

func (s *CatalogService) CreateLocation(ctx context.Context, req *domain.LocationRequest) (*domain.LocationDTO, error) {
	location := &domain.Location{Nome: req.Nome, UF: req.UF}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	dto := mapper.ToLocationDTO(location)
	return &dto, nil
}

func (s *CatalogService) UpdateLocation(ctx context.Context, id uuid.UUID, req *domain.LocationRequest) (*domain.LocationDTO, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "failed to get location")
	}

	location.Nome = req.Nome
	location.UF = req.UF
	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	dto := mapper.ToLocationDTO(location)
	return &dto, nil
}

func (s *CatalogService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.locationRepo.GetByID(ctx, id); err != nil {
		return notFoundOr(err, "failed to get location")
	}
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
