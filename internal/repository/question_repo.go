package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"certquiz/internal/database"
	"certquiz/internal/models"
)

// QuestionRepository handles question bank database operations.
type QuestionRepository struct {
	db database.DBTX
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db database.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `id, category, level, question_no, question_text, choices, correct_index, explanation, created_at`

func scanQuestion(scanner interface{ Scan(dest ...interface{}) error }) (*models.Question, error) {
	q := &models.Question{}
	var choicesJSON string

	err := scanner.Scan(
		&q.ID,
		&q.Category,
		&q.Level,
		&q.QuestionNo,
		&q.QuestionText,
		&choicesJSON,
		&q.CorrectIndex,
		&q.Explanation,
		&q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(choicesJSON), &q.Choices); err != nil {
		return nil, fmt.Errorf("question %d has malformed choices: %w", q.ID, err)
	}
	return q, nil
}

func (r *QuestionRepository) queryQuestions(query string, args ...interface{}) ([]models.Question, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

// QuestionsByCategory retrieves one (category, level) bucket in question_no
// order.
func (r *QuestionRepository) QuestionsByCategory(category models.Category, level int) ([]models.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE category = ? AND level = ?
		ORDER BY question_no
	`
	return r.queryQuestions(query, string(category), level)
}

// AllQuestions retrieves the whole bank.
func (r *QuestionRepository) AllQuestions() ([]models.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		ORDER BY category, level, question_no
	`
	return r.queryQuestions(query)
}

// QuestionByID retrieves a question by ID, or nil when absent.
func (r *QuestionRepository) QuestionByID(id int64) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = ?`

	q, err := scanQuestion(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// QuestionsByIDs retrieves the questions matching ids; result order does not
// follow the input.
func (r *QuestionRepository) QuestionsByIDs(ids []int64) ([]models.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := `SELECT ` + questionColumns + ` FROM questions WHERE id IN (` + placeholders + `)`
	return r.queryQuestions(query, args...)
}

// CountQuestions returns the bank size.
func (r *QuestionRepository) CountQuestions() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&count)
	return count, err
}

// UpsertQuestion inserts or overwrites by the (category, level, question_no)
// natural key and returns the row's id. The lookup-then-write form is
// portable across all three dialects; seeding is single-writer so the gap
// between statements is harmless.
func (r *QuestionRepository) UpsertQuestion(seed models.QuestionSeed) (int64, error) {
	choicesJSON, err := json.Marshal(seed.Choices)
	if err != nil {
		return 0, err
	}

	var existingID int64
	lookup := `SELECT id FROM questions WHERE category = ? AND level = ? AND question_no = ?`
	err = r.db.QueryRow(lookup, string(seed.Category), seed.Level, seed.QuestionNo).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		insert := `
			INSERT INTO questions (category, level, question_no, question_text, choices, correct_index, explanation)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		return r.db.ExecReturningID(insert,
			string(seed.Category), seed.Level, seed.QuestionNo,
			seed.QuestionText, string(choicesJSON), seed.CorrectIndex, seed.Explanation)
	case err != nil:
		return 0, err
	default:
		update := `
			UPDATE questions
			SET question_text = ?, choices = ?, correct_index = ?, explanation = ?
			WHERE id = ?
		`
		_, err = r.db.Exec(update,
			seed.QuestionText, string(choicesJSON), seed.CorrectIndex, seed.Explanation, existingID)
		return existingID, err
	}
}
