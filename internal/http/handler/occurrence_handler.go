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

type OccurrenceHandler struct {
	occurrenceService *service.OccurrenceService
	logger            *zap.Logger
}

func NewOccurrenceHandler(occurrenceService *service.OccurrenceService, logger *zap.Logger) *OccurrenceHandler {
	return &OccurrenceHandler{occurrenceService: occurrenceService, logger: logger}
}

// List godoc
// @Summary List occurrences
// @Tags Occurrences
// @Produce json
// @Param leadId query string false "Filter by lead"
// @Param tipo query string false "Filter by type" Enums(Reclamação, Elogio, Observação)
// @Success 200 {array} domain.OccurrenceDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /occurrences [get]
func (h *OccurrenceHandler) List(w http.ResponseWriter, r *http.Request) {
	var leadID *uuid.UUID
	if raw := r.URL.Query().Get("leadId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid lead ID")
			return
		}
		leadID = &id
	}
	tipo := domain.OccurrenceType(r.URL.Query().Get("tipo"))

	occurrences, err := h.occurrenceService.List(r.Context(), leadID, tipo)
	if err != nil {
		h.logger.Error("failed to list occurrences", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, occurrences)
}

// Create godoc
// @Summary Register an occurrence
// @Tags Occurrences
// @Accept json
// @Produce json
// @Param request body domain.OccurrenceRequest true "Occurrence data"
// @Success 201 {object} domain.OccurrenceDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /occurrences [post]
func (h *OccurrenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.OccurrenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	occurrence, err := h.occurrenceService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, occurrence)
}

// Delete godoc
// @Summary Delete an occurrence
// @Tags Occurrences
// @Param id path string true "Occurrence ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /occurrences/{id} [delete]
func (h *OccurrenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid occurrence ID")
		return
	}

	if err := h.occurrenceService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
