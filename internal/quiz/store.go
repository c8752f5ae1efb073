package quiz

import (
	"time"

	"certquiz/internal/models"
)

// The store interfaces below are the storage contract the services depend
// on. Two implementations exist: the SQL repositories in
// internal/repository and the in-memory maps in internal/repository/memstore,
// selected once at process start. Lookups for absent rows return nil values,
// not errors; errors are reserved for storage failures.

// QuestionStore holds the immutable question bank.
type QuestionStore interface {
	// QuestionsByCategory returns the bucket's questions ordered by
	// question_no. An unknown bucket yields an empty slice.
	QuestionsByCategory(category models.Category, level int) ([]models.Question, error)
	AllQuestions() ([]models.Question, error)
	// QuestionByID returns nil when no such question exists.
	QuestionByID(id int64) (*models.Question, error)
	// QuestionsByIDs returns the matching questions; result order is not
	// guaranteed to follow ids.
	QuestionsByIDs(ids []int64) ([]models.Question, error)
	CountQuestions() (int, error)
	// UpsertQuestion inserts or overwrites by (category, level, question_no),
	// preserving the row's identity on overwrite, and returns the row id.
	UpsertQuestion(seed models.QuestionSeed) (int64, error)
}

// AttemptStore persists attempts and their question/answer rows.
type AttemptStore interface {
	// CreateAttempt writes the attempt and all its question assignments as
	// one logical unit; on failure nothing is visible.
	CreateAttempt(a *models.Attempt, questions []models.AttemptQuestion) error
	// AttemptByID returns nil when no such attempt exists.
	AttemptByID(id string) (*models.Attempt, error)
	// AttemptQuestions returns the attempt's questions ordered by
	// display_order.
	AttemptQuestions(attemptID string) ([]models.AttemptQuestion, error)
	// AttemptAnswers returns the attempt's answers ordered by answered_at.
	AttemptAnswers(attemptID string) ([]models.AttemptAnswer, error)
	InsertAnswer(ans *models.AttemptAnswer) error
	// FinishAttempt transitions to finished only if the attempt is still
	// in_progress, recording correctCount and finishedAt. It reports whether
	// the transition happened, so racing callers can detect the loss.
	FinishAttempt(attemptID string, correctCount int, finishedAt time.Time) (bool, error)
	// AbandonAttempt transitions to abandoned only if still in_progress and
	// reports whether the row changed.
	AbandonAttempt(attemptID string, finishedAt time.Time) (bool, error)
	// RecentAttempts returns the device's attempts newest-first, capped at
	// limit.
	RecentAttempts(deviceID string, limit int) ([]models.Attempt, error)
}

// WrongQuestionStore maintains the per-device review queue.
type WrongQuestionStore interface {
	// RecordMiss creates the record with wrong_count=1 or increments and
	// reactivates an existing one.
	RecordMiss(deviceID string, questionID int64, at time.Time) error
	// RecordCorrect deactivates an existing record; it never creates one.
	RecordCorrect(deviceID string, questionID int64, at time.Time) error
	// ActiveIDs returns active question ids, most recently missed first.
	ActiveIDs(deviceID string) ([]int64, error)
	// WrongQuestion returns nil when the device never missed the question.
	WrongQuestion(deviceID string, questionID int64) (*models.WrongQuestion, error)
}

// StatsStore derives per-bucket totals from finished attempts.
type StatsStore interface {
	// CategoryStats returns one row per (category, level) bucket present in
	// the bank, ordered by category then level. Answered/Correct count
	// distinct question ids from the device's finished attempts only.
	CategoryStats(deviceID string) ([]models.CategoryStat, error)
}

// Stores bundles one backend's implementations for wiring.
type Stores struct {
	Questions QuestionStore
	Attempts  AttemptStore
	Wrong     WrongQuestionStore
	Stats     StatsStore
}
