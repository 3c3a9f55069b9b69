package http

import (
	"net/http"

	"autorenta-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

func (h *ReportHandler) Availability(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportSvc.AvailabilityReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) TopReservedBrands(w http.ResponseWriter, r *http.Request) {
	shares, err := h.reportSvc.TopReservedBrands(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if shares == nil {
		shares = []service.BrandShare{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"brands": shares})
}
