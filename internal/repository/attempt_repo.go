package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"certquiz/internal/database"
	"certquiz/internal/models"
)

// AttemptRepository handles attempt, attempt-question and attempt-answer
// database operations.
type AttemptRepository struct {
	db *database.DB
}

// NewAttemptRepository creates a new attempt repository
func NewAttemptRepository(db *database.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// CreateAttempt writes the attempt row and every question assignment in one
// transaction; a partially shuffled attempt is unusable, so either all rows
// land or none do.
func (r *AttemptRepository) CreateAttempt(a *models.Attempt, questions []models.AttemptQuestion) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertAttemptRow(tx, a); err != nil {
		return err
	}
	for _, aq := range questions {
		if err := insertAssignmentRow(tx, &aq); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertAttemptRow(dbtx database.DBTX, a *models.Attempt) error {
	var category interface{}
	if a.Category != nil {
		category = string(*a.Category)
	}
	var level interface{}
	if a.Level != nil {
		level = *a.Level
	}

	query := `
		INSERT INTO attempts (id, device_id, mode, category, level, status, total_questions, correct_count, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := dbtx.Exec(query,
		a.ID, a.DeviceID, string(a.Mode), category, level,
		string(a.Status), a.TotalQuestions, a.CorrectCount, a.StartedAt)
	return err
}

func insertAssignmentRow(dbtx database.DBTX, aq *models.AttemptQuestion) error {
	orderJSON, err := json.Marshal(aq.ChoiceOrder)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO attempt_questions (attempt_id, question_id, display_order, choice_order)
		VALUES (?, ?, ?, ?)
	`
	_, err = dbtx.Exec(query, aq.AttemptID, aq.QuestionID, aq.DisplayOrder, string(orderJSON))
	return err
}

// AttemptByID retrieves an attempt, or nil when absent.
func (r *AttemptRepository) AttemptByID(id string) (*models.Attempt, error) {
	query := `
		SELECT id, device_id, mode, category, level, status, total_questions, correct_count, started_at, finished_at
		FROM attempts
		WHERE id = ?
	`
	a, err := scanAttempt(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func scanAttempt(scanner interface{ Scan(dest ...interface{}) error }) (*models.Attempt, error) {
	a := &models.Attempt{}
	var (
		mode       string
		status     string
		category   sql.NullString
		level      sql.NullInt64
		finishedAt sql.NullTime
	)

	err := scanner.Scan(
		&a.ID,
		&a.DeviceID,
		&mode,
		&category,
		&level,
		&status,
		&a.TotalQuestions,
		&a.CorrectCount,
		&a.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Mode = models.Mode(mode)
	a.Status = models.AttemptStatus(status)
	if category.Valid {
		c := models.Category(category.String)
		a.Category = &c
	}
	if level.Valid {
		l := int(level.Int64)
		a.Level = &l
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		a.FinishedAt = &t
	}
	return a, nil
}

// AttemptQuestions retrieves the attempt's questions in display order.
func (r *AttemptRepository) AttemptQuestions(attemptID string) ([]models.AttemptQuestion, error) {
	query := `
		SELECT attempt_id, question_id, display_order, choice_order
		FROM attempt_questions
		WHERE attempt_id = ?
		ORDER BY display_order
	`
	rows, err := r.db.Query(query, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.AttemptQuestion
	for rows.Next() {
		var aq models.AttemptQuestion
		var orderJSON string
		if err := rows.Scan(&aq.AttemptID, &aq.QuestionID, &aq.DisplayOrder, &orderJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(orderJSON), &aq.ChoiceOrder); err != nil {
			return nil, fmt.Errorf("attempt %s question %d has malformed choice order: %w", aq.AttemptID, aq.QuestionID, err)
		}
		result = append(result, aq)
	}
	return result, rows.Err()
}

// AttemptAnswers retrieves the attempt's answers in submission order.
func (r *AttemptRepository) AttemptAnswers(attemptID string) ([]models.AttemptAnswer, error) {
	query := `
		SELECT attempt_id, question_id, chosen_display_index, chosen_original_index, is_correct, answered_at
		FROM attempt_answers
		WHERE attempt_id = ?
		ORDER BY answered_at, id
	`
	rows, err := r.db.Query(query, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.AttemptAnswer
	for rows.Next() {
		var ans models.AttemptAnswer
		err := rows.Scan(
			&ans.AttemptID,
			&ans.QuestionID,
			&ans.ChosenDisplayIndex,
			&ans.ChosenOriginalIndex,
			&ans.IsCorrect,
			&ans.AnsweredAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, ans)
	}
	return result, rows.Err()
}

// InsertAnswer records one response.
func (r *AttemptRepository) InsertAnswer(ans *models.AttemptAnswer) error {
	query := `
		INSERT INTO attempt_answers (attempt_id, question_id, chosen_display_index, chosen_original_index, is_correct, answered_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		ans.AttemptID, ans.QuestionID, ans.ChosenDisplayIndex,
		ans.ChosenOriginalIndex, ans.IsCorrect, ans.AnsweredAt)
	return err
}

// FinishAttempt transitions to finished, guarded by the current status so
// the loser of a concurrent race sees no rows updated.
func (r *AttemptRepository) FinishAttempt(attemptID string, correctCount int, finishedAt time.Time) (bool, error) {
	query := `
		UPDATE attempts
		SET status = ?, correct_count = ?, finished_at = ?
		WHERE id = ? AND status = ?
	`
	result, err := r.db.Exec(query,
		string(models.StatusFinished), correctCount, finishedAt,
		attemptID, string(models.StatusInProgress))
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AbandonAttempt transitions to abandoned with the same status guard.
func (r *AttemptRepository) AbandonAttempt(attemptID string, finishedAt time.Time) (bool, error) {
	query := `
		UPDATE attempts
		SET status = ?, finished_at = ?
		WHERE id = ? AND status = ?
	`
	result, err := r.db.Exec(query,
		string(models.StatusAbandoned), finishedAt,
		attemptID, string(models.StatusInProgress))
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// RecentAttempts retrieves the device's attempts newest-first.
func (r *AttemptRepository) RecentAttempts(deviceID string, limit int) ([]models.Attempt, error) {
	query := `
		SELECT id, device_id, mode, category, level, status, total_questions, correct_count, started_at, finished_at
		FROM attempts
		WHERE device_id = ?
		ORDER BY started_at DESC
		LIMIT ?
	`
	rows, err := r.db.Query(query, deviceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}
