package handlers

import (
	"net/http"

	"certquiz/internal/service"
)

// SummaryHandler serves the device progress dashboard.
type SummaryHandler struct {
	summary *service.SummaryService
}

// NewSummaryHandler creates a summary handler.
func NewSummaryHandler(summary *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summary: summary}
}

// Summary returns bank size, per-category stats, recent attempts and the
// review-queue size for the requesting device.
func (h *SummaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.summary.DeviceSummary(DeviceIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
