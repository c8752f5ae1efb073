package repository

import (
	"certquiz/internal/database"
	"certquiz/internal/quiz"
)

// NewStores bundles the SQL-backed store implementations.
func NewStores(db *database.DB) quiz.Stores {
	return quiz.Stores{
		Questions: NewQuestionRepository(db),
		Attempts:  NewAttemptRepository(db),
		Wrong:     NewWrongQuestionRepository(db),
		Stats:     NewStatsRepository(db),
	}
}
