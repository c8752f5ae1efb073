// Package seed loads the built-in question bank. Loading upserts by the
// (category, level, question_no) natural key, so reruns refresh text and
// choices without duplicating rows or changing ids.
//
// The built-in bank is a starter set covering every (category, level)
// bucket, smaller than a mock exam's 30-question sample; mock attempts draw
// the whole bank until the content grows past that size. New questions only
// need an entry in Questions — ids and display orders take care of
// themselves.
package seed

import (
	"fmt"

	"certquiz/internal/quiz"
)

// Load upserts every built-in question and returns how many were applied.
func Load(store quiz.QuestionStore) (int, error) {
	for i, q := range Questions {
		if len(q.Choices) != 4 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return i, fmt.Errorf("seed question %s/%d/%d is malformed", q.Category, q.Level, q.QuestionNo)
		}
		if _, err := store.UpsertQuestion(q); err != nil {
			return i, fmt.Errorf("failed to seed question %s/%d/%d: %w", q.Category, q.Level, q.QuestionNo, err)
		}
	}
	return len(Questions), nil
}
