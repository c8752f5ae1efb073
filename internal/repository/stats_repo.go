package repository

import (
	"certquiz/internal/database"
	"certquiz/internal/models"
)

// StatsRepository derives per-bucket progress from finished attempts.
type StatsRepository struct {
	db database.DBTX
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db database.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// CategoryStats reports, for every (category, level) bucket in the bank, the
// bucket size plus how many distinct questions the device has answered and
// answered correctly across its finished attempts. Counting DISTINCT
// question ids keeps a question answered in two finished attempts from
// counting twice.
func (r *StatsRepository) CategoryStats(deviceID string) ([]models.CategoryStat, error) {
	query := `
		SELECT
			q.category,
			q.level,
			COUNT(DISTINCT q.id) AS total,
			COUNT(DISTINCT aa.question_id) AS answered,
			COUNT(DISTINCT CASE WHEN aa.is_correct THEN aa.question_id END) AS correct
		FROM questions q
		LEFT JOIN attempt_answers aa ON aa.question_id = q.id
			AND aa.attempt_id IN (
				SELECT id FROM attempts WHERE device_id = ? AND status = ?
			)
		GROUP BY q.category, q.level
		ORDER BY q.category, q.level
	`
	rows, err := r.db.Query(query, deviceID, string(models.StatusFinished))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.CategoryStat
	for rows.Next() {
		var s models.CategoryStat
		if err := rows.Scan(&s.Category, &s.Level, &s.Total, &s.Answered, &s.Correct); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
