package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rodolog/brokerage-api/internal/auth"
	"github.com/rodolog/brokerage-api/internal/service"
	"go.uber.org/zap"
)

type CommissionHandler struct {
	commissionService *service.CommissionService
	logger            *zap.Logger
}

func NewCommissionHandler(commissionService *service.CommissionService, logger *zap.Logger) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService, logger: logger}
}

// List godoc
// @Summary Monthly commission statements
// @Description Commission statements of every active seller for one month. Sellers see only their own statement.
// @Tags Commissions
// @Produce json
// @Param mes query string false "Target month (YYYY-MM), defaults to the current month"
// @Success 200 {array} domain.CommissionStatementDTO
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Security BearerAuth
// @Router /commissions [get]
func (h *CommissionHandler) List(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("mes"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	statements, err := h.commissionService.MonthlyStatements(r.Context(), month)
	if err != nil {
		h.logger.Error("failed to compute statements", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	// Sellers without management roles only see themselves
	if userCtx, ok := auth.FromContext(r.Context()); ok && !userCtx.IsManager() {
		for i := range statements {
			if statements[i].VendedorID == userCtx.UserID {
				respondJSON(w, http.StatusOK, statements[i:i+1])
				return
			}
		}
		respondJSON(w, http.StatusOK, statements[:0])
		return
	}

	respondJSON(w, http.StatusOK, statements)
}

// Get godoc
// @Summary One seller's monthly statement
// @Tags Commissions
// @Produce json
// @Param vendedorId path string true "Seller ID"
// @Param mes query string false "Target month (YYYY-MM), defaults to the current month"
// @Success 200 {object} domain.CommissionStatementDTO
// @Failure 400 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /commissions/{vendedorId} [get]
func (h *CommissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	vendedorID, err := uuid.Parse(chi.URLParam(r, "vendedorId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vendedor ID")
		return
	}

	month, err := parseMonth(r.URL.Query().Get("mes"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	if userCtx, ok := auth.FromContext(r.Context()); ok && !userCtx.CanAccessSeller(vendedorID) {
		respondWithError(w, http.StatusForbidden, "Cannot access another seller's statement")
		return
	}

	statement, err := h.commissionService.Statement(r.Context(), vendedorID, month)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, statement)
}

// Export godoc
// @Summary Export a statement as CSV
// @Description Download one seller's monthly statement as a semicolon-separated sheet
// @Tags Commissions
// @Produce text/csv
// @Param vendedorId path string true "Seller ID"
// @Param mes query string false "Target month (YYYY-MM), defaults to the current month"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} domain.APIError
// @Failure 403 {object} domain.APIError
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Router /commissions/{vendedorId}/export [get]
func (h *CommissionHandler) Export(w http.ResponseWriter, r *http.Request) {
	vendedorID, err := uuid.Parse(chi.URLParam(r, "vendedorId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vendedor ID")
		return
	}

	month, err := parseMonth(r.URL.Query().Get("mes"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	if userCtx, ok := auth.FromContext(r.Context()); ok && !userCtx.CanAccessSeller(vendedorID) {
		respondWithError(w, http.StatusForbidden, "Cannot access another seller's statement")
		return
	}

	data, err := h.commissionService.ExportCSV(r.Context(), vendedorID, month)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("comissoes_%s.csv", month.Format("2006-01"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
