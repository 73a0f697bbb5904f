package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"aicomply/internal/service"
	"aicomply/internal/transport/rest/middleware"
)

// ReportHandler handles compliance reporting endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// Summary handles GET /v1/reports/summary
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())

	summary, err := h.reportSvc.Summary(r.Context(), orgID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// SystemReport handles GET /v1/reports/systems/{systemId}
func (h *ReportHandler) SystemReport(w http.ResponseWriter, r *http.Request) {
	orgID := middleware.GetOrgID(r.Context())
	systemID := mux.Vars(r)["systemId"]

	report, err := h.reportSvc.SystemReport(r.Context(), orgID, systemID)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, report)
}
