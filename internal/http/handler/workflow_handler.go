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

type WorkflowHandler struct {
	workflowService *service.WorkflowService
	logger          *zap.Logger
}

func NewWorkflowHandler(workflowService *service.WorkflowService, logger *zap.Logger) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService, logger: logger}
}

// List godoc
// @Summary List workflow templates
// @Tags Workflow
// @Produce json
// @Success 200 {array} domain.WorkflowTemplateDTO
// @Security BearerAuth
// @Router /workflow-templates [get]
func (h *WorkflowHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.workflowService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list workflow templates", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

// Create godoc
// @Summary Create a workflow template step
// @Tags Workflow
// @Accept json
// @Produce json
// @Param request body domain.WorkflowTemplateRequest true "Template data"
// @Success 201 {object} domain.WorkflowTemplateDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /workflow-templates [post]
func (h *WorkflowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.WorkflowTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	template, err := h.workflowService.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, template)
}

// Update godoc
// @Summary Update a workflow template step
// @Description Edit a template step. The new wording is propagated to pending future tasks generated from it.
// @Tags Workflow
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body domain.WorkflowTemplateRequest true "Template data"
// @Success 200 {object} domain.WorkflowTemplateDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /workflow-templates/{id} [put]
func (h *WorkflowHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	var req domain.WorkflowTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	template, err := h.workflowService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, template)
}

// Delete godoc
// @Summary Delete a workflow template step
// @Tags Workflow
// @Param id path string true "Template ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /workflow-templates/{id} [delete]
func (h *WorkflowHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := h.workflowService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
