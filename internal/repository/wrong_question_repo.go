package repository

import (
	"database/sql"
	"time"

	"certquiz/internal/database"
	"certquiz/internal/models"
)

// WrongQuestionRepository handles review-queue database operations.
type WrongQuestionRepository struct {
	db database.DBTX
}

// NewWrongQuestionRepository creates a new wrong-question repository
func NewWrongQuestionRepository(db database.DBTX) *WrongQuestionRepository {
	return &WrongQuestionRepository{db: db}
}

// RecordMiss increments and reactivates the record, creating it on first
// miss. The update-then-insert order keeps the statement portable; if two
// tabs of the same device race the insert, the loser falls back to the
// update path.
func (r *WrongQuestionRepository) RecordMiss(deviceID string, questionID int64, at time.Time) error {
	update := `
		UPDATE wrong_questions
		SET wrong_count = wrong_count + 1, is_active = ?, last_wrong_at = ?, cleared_at = NULL
		WHERE device_id = ? AND question_id = ?
	`
	result, err := r.db.Exec(update, true, at, deviceID, questionID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	insert := `
		INSERT INTO wrong_questions (device_id, question_id, wrong_count, last_wrong_at, is_active)
		VALUES (?, ?, 1, ?, ?)
	`
	if _, err := r.db.Exec(insert, deviceID, questionID, at, true); err != nil {
		// Unique violation from a concurrent first miss: apply as increment.
		// If the retry touches no row either, the failure was real.
		retryResult, retryErr := r.db.Exec(update, true, at, deviceID, questionID)
		if retryErr != nil {
			return err
		}
		retried, retryErr := retryResult.RowsAffected()
		if retryErr != nil || retried == 0 {
			return err
		}
	}
	return nil
}

// RecordCorrect deactivates an existing record; a device that never missed
// the question stays without one.
func (r *WrongQuestionRepository) RecordCorrect(deviceID string, questionID int64, at time.Time) error {
	query := `
		UPDATE wrong_questions
		SET is_active = ?, cleared_at = ?
		WHERE device_id = ? AND question_id = ?
	`
	_, err := r.db.Exec(query, false, at, deviceID, questionID)
	return err
}

// ActiveIDs retrieves the review queue, most recently missed first.
func (r *WrongQuestionRepository) ActiveIDs(deviceID string) ([]int64, error) {
	query := `
		SELECT question_id
		FROM wrong_questions
		WHERE device_id = ? AND is_active = ?
		ORDER BY last_wrong_at DESC
	`
	rows, err := r.db.Query(query, deviceID, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// WrongQuestion retrieves one tracking record, or nil when absent.
func (r *WrongQuestionRepository) WrongQuestion(deviceID string, questionID int64) (*models.WrongQuestion, error) {
	query := `
		SELECT device_id, question_id, wrong_count, last_wrong_at, cleared_at, is_active
		FROM wrong_questions
		WHERE device_id = ? AND question_id = ?
	`
	wq := &models.WrongQuestion{}
	var clearedAt sql.NullTime

	err := r.db.QueryRow(query, deviceID, questionID).Scan(
		&wq.DeviceID,
		&wq.QuestionID,
		&wq.WrongCount,
		&wq.LastWrongAt,
		&clearedAt,
		&wq.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if clearedAt.Valid {
		t := clearedAt.Time
		wq.ClearedAt = &t
	}
	return wq, nil
}
