package handlers

import (
	"net/http"
	"time"

	"certquiz/internal/quiz"
	"certquiz/internal/service"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Stores       quiz.Stores
	Attempts     *service.AttemptService
	Summary      *service.SummaryService
	DeviceSecret []byte
	DeviceTTL    time.Duration
}

// NewRouter assembles the HTTP API.
func NewRouter(cfg RouterConfig) http.Handler {
	mw := NewMiddleware(cfg.DeviceSecret)

	deviceHandler := NewDeviceHandler(cfg.DeviceSecret, cfg.DeviceTTL)
	attemptHandler := NewAttemptHandler(cfg.Attempts)
	summaryHandler := NewSummaryHandler(cfg.Summary)
	seedHandler := NewSeedHandler(cfg.Stores.Questions)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /api/device/init", deviceHandler.Init)

	mux.HandleFunc("POST /api/attempts/start", mw.RequireDevice(attemptHandler.Start))
	mux.HandleFunc("GET /api/attempts/{attemptId}", mw.RequireDevice(attemptHandler.View))
	mux.HandleFunc("POST /api/attempts/answer", mw.RequireDevice(attemptHandler.Answer))
	mux.HandleFunc("POST /api/attempts/finish", mw.RequireDevice(attemptHandler.Finish))
	mux.HandleFunc("POST /api/attempts/abandon", mw.RequireDevice(attemptHandler.Abandon))

	mux.HandleFunc("GET /api/summary", mw.RequireDevice(summaryHandler.Summary))

	mux.HandleFunc("POST /api/seed", seedHandler.Seed)

	return Logging(mux)
}
