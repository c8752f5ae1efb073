package handlers

import (
	"net/http"

	"certquiz/internal/models"
	"certquiz/internal/quiz"
	"certquiz/internal/service"
)

// AttemptHandler exposes the attempt lifecycle over HTTP.
type AttemptHandler struct {
	attempts *service.AttemptService
}

// NewAttemptHandler creates an attempt handler.
func NewAttemptHandler(attempts *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attempts: attempts}
}

type startAttemptRequest struct {
	Mode     models.Mode     `json:"mode"`
	Category models.Category `json:"category"`
	Level    int             `json:"level"`
}

// Start begins a new attempt for the device.
func (h *AttemptHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startAttemptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.attempts.StartAttempt(DeviceIDFromContext(r.Context()), req.Mode, req.Category, req.Level)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// View returns the attempt with its display-ordered questions, for rendering
// or resuming.
func (h *AttemptHandler) View(w http.ResponseWriter, r *http.Request) {
	attemptID := r.PathValue("attemptId")
	if attemptID == "" {
		respondError(w, quiz.InvalidInput("attempt id is required"))
		return
	}

	view, err := h.attempts.AttemptView(attemptID, DeviceIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type submitAnswerRequest struct {
	AttemptID          string `json:"attemptId"`
	QuestionID         int64  `json:"questionId"`
	ChosenDisplayIndex *int   `json:"chosenDisplayIndex"`
}

// Answer scores one submitted choice.
func (h *AttemptHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.AttemptID == "" || req.QuestionID == 0 || req.ChosenDisplayIndex == nil {
		respondError(w, quiz.InvalidInput("attemptId, questionId and chosenDisplayIndex are required"))
		return
	}

	result, err := h.attempts.SubmitAnswer(req.AttemptID, DeviceIDFromContext(r.Context()), req.QuestionID, *req.ChosenDisplayIndex)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type attemptIDRequest struct {
	AttemptID string `json:"attemptId"`
}

// Finish closes an in-progress attempt and returns its score.
func (h *AttemptHandler) Finish(w http.ResponseWriter, r *http.Request) {
	var req attemptIDRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.AttemptID == "" {
		respondError(w, quiz.InvalidInput("attemptId is required"))
		return
	}

	result, err := h.attempts.FinishAttempt(req.AttemptID, DeviceIDFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Abandon marks an attempt as abandoned. Already-terminal attempts succeed.
func (h *AttemptHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	var req attemptIDRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.AttemptID == "" {
		respondError(w, quiz.InvalidInput("attemptId is required"))
		return
	}

	if err := h.attempts.AbandonAttempt(req.AttemptID, DeviceIDFromContext(r.Context())); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
