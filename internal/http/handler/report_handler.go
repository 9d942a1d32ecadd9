package handler

import (
	"net/http"

	"github.com/rodolog/brokerage-api/internal/service"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportService, logger: logger}
}

// MonthlySummary godoc
// @Summary Monthly result summary
// @Description Revenue, profit and tax totals over the accepted and finalized proposals of one month
// @Tags Reports
// @Produce json
// @Param mes query string false "Target month (YYYY-MM), defaults to the current month"
// @Success 200 {object} domain.MonthlyReportDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *ReportHandler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r.URL.Query().Get("mes"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM")
		return
	}

	report, err := h.reportService.MonthlySummary(r.Context(), month)
	if err != nil {
		h.logger.Error("failed to compute monthly summary", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// ABCClassification godoc
// @Summary ABC lead classification
// @Description Leads ranked by accumulated profit. The top 20% are class A, the next 50% class B, the remainder class C.
// @Tags Reports
// @Produce json
// @Success 200 {array} domain.ABCEntryDTO
// @Security BearerAuth
// @Router /reports/abc [get]
func (h *ReportHandler) ABCClassification(w http.ResponseWriter, r *http.Request) {
	entries, err := h.reportService.ABCClassification(r.Context())
	if err != nil {
		h.logger.Error("failed to compute ABC classification", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// LossProcesses godoc
// @Summary Processes operating at a loss
// @Description Accepted and finalized proposals whose profit is negative
// @Tags Reports
// @Produce json
// @Success 200 {array} domain.LossProcessDTO
// @Security BearerAuth
// @Router /reports/losses [get]
func (h *ReportHandler) LossProcesses(w http.ResponseWriter, r *http.Request) {
	losses, err := h.reportService.LossProcesses(r.Context())
	if err != nil {
		h.logger.Error("failed to list loss processes", zap.Error(err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, losses)
}
