package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/rodolog/brokerage-api/internal/service"
	"go.uber.org/zap"
)

// CatalogHandler exposes the reference lists used when composing proposals
type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, logger: logger}
}

// ListCosts godoc
// @Summary List operational costs
// @Tags Catalogs
// @Produce json
// @Success 200 {array} domain.OperationalCostDTO
// @Security BearerAuth
// @Router /operational-costs [get]
func (h *CatalogHandler) ListCosts(w http.ResponseWriter, r *http.Request) {
	costs, err := h.catalogService.ListCosts(r.Context())
	if err != nil {
		h.logger.Error("failed to list operational costs", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, costs)
}

// CreateCost godoc
// @Summary Create an operational cost
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param request body domain.OperationalCostRequest true "Cost data"
// @Success 201 {object} domain.OperationalCostDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /operational-costs [post]
func (h *CatalogHandler) CreateCost(w http.ResponseWriter, r *http.Request) {
	var req domain.OperationalCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	cost, err := h.catalogService.CreateCost(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, cost)
}

// UpdateCost godoc
// @Summary Update an operational cost
// @Description Edit a catalog entry. Proposals keep the value snapshot taken when they were created.
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param id path string true "Cost ID"
// @Param request body domain.OperationalCostRequest true "Cost data"
// @Success 200 {object} domain.OperationalCostDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /operational-costs/{id} [put]
func (h *CatalogHandler) UpdateCost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cost ID")
		return
	}

	var req domain.OperationalCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	cost, err := h.catalogService.UpdateCost(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cost)
}

// DeleteCost godoc
// @Summary Delete an operational cost
// @Tags Catalogs
// @Param id path string true "Cost ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /operational-costs/{id} [delete]
func (h *CatalogHandler) DeleteCost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cost ID")
		return
	}

	if err := h.catalogService.DeleteCost(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListPaymentTerms godoc
// @Summary List payment terms
// @Tags Catalogs
// @Produce json
// @Success 200 {array} domain.PaymentTermDTO
// @Security BearerAuth
// @Router /payment-terms [get]
func (h *CatalogHandler) ListPaymentTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := h.catalogService.ListPaymentTerms(r.Context())
	if err != nil {
		h.logger.Error("failed to list payment terms", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, terms)
}

// CreatePaymentTerm godoc
// @Summary Create a payment term
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param request body domain.PaymentTermRequest true "Term data"
// @Success 201 {object} domain.PaymentTermDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /payment-terms [post]
func (h *CatalogHandler) CreatePaymentTerm(w http.ResponseWriter, r *http.Request) {
	var req domain.PaymentTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	term, err := h.catalogService.CreatePaymentTerm(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, term)
}

// UpdatePaymentTerm godoc
// @Summary Update a payment term
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param id path string true "Term ID"
// @Param request body domain.PaymentTermRequest true "Term data"
// @Success 200 {object} domain.PaymentTermDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /payment-terms/{id} [put]
func (h *CatalogHandler) UpdatePaymentTerm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid term ID")
		return
	}

	var req domain.PaymentTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	term, err := h.catalogService.UpdatePaymentTerm(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, term)
}

// DeletePaymentTerm godoc
// @Summary Delete a payment term
// @Tags Catalogs
// @Param id path string true "Term ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /payment-terms/{id} [delete]
func (h *CatalogHandler) DeletePaymentTerm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid term ID")
		return
	}

	if err := h.catalogService.DeletePaymentTerm(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// ListLocations godoc
// @Summary List locations
// @Tags Catalogs
// @Produce json
// @Success 200 {array} domain.LocationDTO
// @Security BearerAuth
// @Router /locations [get]
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.catalogService.ListLocations(r.Context())
	if err != nil {
		h.logger.Error("failed to list locations", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

// CreateLocation godoc
// @Summary Create a location
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param request body domain.LocationRequest true "Location data"
// @Success 201 {object} domain.LocationDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /locations [post]
func (h *CatalogHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req domain.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	location, err := h.catalogService.CreateLocation(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, location)
}

// UpdateLocation godoc
// @Summary Update a location
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body domain.LocationRequest true "Location data"
// @Success 200 {object} domain.LocationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *CatalogHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	var req domain.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	location, err := h.catalogService.UpdateLocation(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, location)
}

// DeleteLocation godoc
// @Summary Delete a location
// @Tags Catalogs
// @Param id path string true "Location ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (h *CatalogHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}

	if err := h.catalogService.DeleteLocation(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
