package handlers

import (
	"net/http"

	"certquiz/internal/quiz"
	"certquiz/internal/seed"
)

// SeedHandler reloads the built-in question bank on demand.
type SeedHandler struct {
	questions quiz.QuestionStore
}

// NewSeedHandler creates a seed handler.
func NewSeedHandler(questions quiz.QuestionStore) *SeedHandler {
	return &SeedHandler{questions: questions}
}

// Seed upserts the built-in bank. Safe to call repeatedly: existing
// questions keep their ids and get their content refreshed.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	count, err := seed.Load(h.questions)
	if err != nil {
		respondError(w, quiz.Internal(err))
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"seeded": count})
}
