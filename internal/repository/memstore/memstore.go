// Package memstore is the process-memory storage backend, used when no
// database is configured. It implements the same store contracts as the SQL
// repositories, so the services never know which backend is active. State
// lives for the lifetime of the process only.
package memstore

import (
	"sort"
	"sync"
	"time"

	"certquiz/internal/models"
	"certquiz/internal/quiz"
)

// Store holds all quiz state in memory, guarded by one RWMutex. It
// implements every store interface; entities are copied on the way in and
// out so callers never alias internal state.
type Store struct {
	mu               sync.RWMutex
	nextQuestionID   int64
	questions        []models.Question
	attempts         map[string]*models.Attempt
	attemptQuestions map[string][]models.AttemptQuestion
	attemptAnswers   map[string][]models.AttemptAnswer
	wrong            map[string]map[int64]*models.WrongQuestion
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		nextQuestionID:   1,
		attempts:         map[string]*models.Attempt{},
		attemptQuestions: map[string][]models.AttemptQuestion{},
		attemptAnswers:   map[string][]models.AttemptAnswer{},
		wrong:            map[string]map[int64]*models.WrongQuestion{},
	}
}

// Stores bundles the store for wiring.
func (s *Store) Stores() quiz.Stores {
	return quiz.Stores{Questions: s, Attempts: s, Wrong: s, Stats: s}
}

func copyQuestion(q models.Question) models.Question {
	out := q
	out.Choices = append([]string(nil), q.Choices...)
	return out
}

func copyAttempt(a models.Attempt) models.Attempt {
	out := a
	if a.Category != nil {
		c := *a.Category
		out.Category = &c
	}
	if a.Level != nil {
		l := *a.Level
		out.Level = &l
	}
	if a.FinishedAt != nil {
		t := *a.FinishedAt
		out.FinishedAt = &t
	}
	return out
}

func copyAttemptQuestion(aq models.AttemptQuestion) models.AttemptQuestion {
	out := aq
	out.ChoiceOrder = append([]int(nil), aq.ChoiceOrder...)
	return out
}

/* ---------- QuestionStore ---------- */

func (s *Store) QuestionsByCategory(category models.Category, level int) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Question
	for _, q := range s.questions {
		if q.Category == category && q.Level == level {
			result = append(result, copyQuestion(q))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].QuestionNo < result[j].QuestionNo })
	return result, nil
}

func (s *Store) AllQuestions() ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		result = append(result, copyQuestion(q))
	}
	return result, nil
}

func (s *Store) QuestionByID(id int64) (*models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.questions {
		if q.ID == id {
			out := copyQuestion(q)
			return &out, nil
		}
	}
	return nil, nil
}

func (s *Store) QuestionsByIDs(ids []int64) ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idSet := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	var result []models.Question
	for _, q := range s.questions {
		if _, ok := idSet[q.ID]; ok {
			result = append(result, copyQuestion(q))
		}
	}
	return result, nil
}

func (s *Store) CountQuestions() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions), nil
}

func (s *Store) UpsertQuestion(seed models.QuestionSeed) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, q := range s.questions {
		if q.Category == seed.Category && q.Level == seed.Level && q.QuestionNo == seed.QuestionNo {
			s.questions[i].QuestionText = seed.QuestionText
			s.questions[i].Choices = append([]string(nil), seed.Choices...)
			s.questions[i].CorrectIndex = seed.CorrectIndex
			s.questions[i].Explanation = seed.Explanation
			return q.ID, nil
		}
	}

	id := s.nextQuestionID
	s.questions = append(s.questions, models.Question{
		ID:           id,
		Category:     seed.Category,
		Level:        seed.Level,
		QuestionNo:   seed.QuestionNo,
		QuestionText: seed.QuestionText,
		Choices:      append([]string(nil), seed.Choices...),
		CorrectIndex: seed.CorrectIndex,
		Explanation:  seed.Explanation,
		CreatedAt:    time.Now(),
	})
	s.nextQuestionID++
	return id, nil
}

/* ---------- AttemptStore ---------- */

func (s *Store) CreateAttempt(a *models.Attempt, questions []models.AttemptQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := copyAttempt(*a)
	s.attempts[a.ID] = &stored

	rows := make([]models.AttemptQuestion, 0, len(questions))
	for _, aq := range questions {
		rows = append(rows, copyAttemptQuestion(aq))
	}
	s.attemptQuestions[a.ID] = rows
	return nil
}

func (s *Store) AttemptByID(id string) (*models.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attempts[id]
	if !ok {
		return nil, nil
	}
	out := copyAttempt(*a)
	return &out, nil
}

func (s *Store) AttemptQuestions(attemptID string) ([]models.AttemptQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.attemptQuestions[attemptID]
	result := make([]models.AttemptQuestion, 0, len(rows))
	for _, aq := range rows {
		result = append(result, copyAttemptQuestion(aq))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DisplayOrder < result[j].DisplayOrder })
	return result, nil
}

func (s *Store) AttemptAnswers(attemptID string) ([]models.AttemptAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.AttemptAnswer(nil), s.attemptAnswers[attemptID]...), nil
}

func (s *Store) InsertAnswer(ans *models.AttemptAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attemptAnswers[ans.AttemptID] = append(s.attemptAnswers[ans.AttemptID], *ans)
	return nil
}

func (s *Store) FinishAttempt(attemptID string, correctCount int, finishedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptID]
	if !ok || a.Status != models.StatusInProgress {
		return false, nil
	}
	a.Status = models.StatusFinished
	a.CorrectCount = correctCount
	t := finishedAt
	a.FinishedAt = &t
	return true, nil
}

func (s *Store) AbandonAttempt(attemptID string, finishedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptID]
	if !ok || a.Status != models.StatusInProgress {
		return false, nil
	}
	a.Status = models.StatusAbandoned
	t := finishedAt
	a.FinishedAt = &t
	return true, nil
}

func (s *Store) RecentAttempts(deviceID string, limit int) ([]models.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Attempt
	for _, a := range s.attempts {
		if a.DeviceID == deviceID {
			result = append(result, copyAttempt(*a))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].StartedAt.After(result[j].StartedAt)
		}
		return result[i].ID < result[j].ID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

/* ---------- WrongQuestionStore ---------- */

func (s *Store) RecordMiss(deviceID string, questionID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDevice, ok := s.wrong[deviceID]
	if !ok {
		byDevice = map[int64]*models.WrongQuestion{}
		s.wrong[deviceID] = byDevice
	}

	if wq, ok := byDevice[questionID]; ok {
		wq.WrongCount++
		wq.IsActive = true
		wq.LastWrongAt = at
		wq.ClearedAt = nil
		return nil
	}

	byDevice[questionID] = &models.WrongQuestion{
		DeviceID:    deviceID,
		QuestionID:  questionID,
		WrongCount:  1,
		LastWrongAt: at,
		IsActive:    true,
	}
	return nil
}

func (s *Store) RecordCorrect(deviceID string, questionID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if wq, ok := s.wrong[deviceID][questionID]; ok {
		wq.IsActive = false
		t := at
		wq.ClearedAt = &t
	}
	return nil
}

func (s *Store) ActiveIDs(deviceID string) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var active []*models.WrongQuestion
	for _, wq := range s.wrong[deviceID] {
		if wq.IsActive {
			active = append(active, wq)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].LastWrongAt.Equal(active[j].LastWrongAt) {
			return active[i].LastWrongAt.After(active[j].LastWrongAt)
		}
		return active[i].QuestionID < active[j].QuestionID
	})

	ids := make([]int64, 0, len(active))
	for _, wq := range active {
		ids = append(ids, wq.QuestionID)
	}
	return ids, nil
}

func (s *Store) WrongQuestion(deviceID string, questionID int64) (*models.WrongQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wq, ok := s.wrong[deviceID][questionID]
	if !ok {
		return nil, nil
	}
	out := *wq
	if wq.ClearedAt != nil {
		t := *wq.ClearedAt
		out.ClearedAt = &t
	}
	return &out, nil
}

/* ---------- StatsStore ---------- */

func (s *Store) CategoryStats(deviceID string) ([]models.CategoryStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type bucket struct {
		category models.Category
		level    int
	}

	stats := map[bucket]*models.CategoryStat{}
	byQuestion := map[int64]bucket{}
	for _, q := range s.questions {
		b := bucket{q.Category, q.Level}
		byQuestion[q.ID] = b
		if _, ok := stats[b]; !ok {
			stats[b] = &models.CategoryStat{Category: q.Category, Level: q.Level}
		}
		stats[b].Total++
	}

	answered := map[int64]struct{}{}
	correct := map[int64]struct{}{}
	for attemptID, a := range s.attempts {
		if a.DeviceID != deviceID || a.Status != models.StatusFinished {
			continue
		}
		for _, ans := range s.attemptAnswers[attemptID] {
			answered[ans.QuestionID] = struct{}{}
			if ans.IsCorrect {
				correct[ans.QuestionID] = struct{}{}
			}
		}
	}
	for qid := range answered {
		if st, ok := stats[byQuestion[qid]]; ok {
			st.Answered++
		}
	}
	for qid := range correct {
		if st, ok := stats[byQuestion[qid]]; ok {
			st.Correct++
		}
	}

	result := make([]models.CategoryStat, 0, len(stats))
	for _, st := range stats {
		result = append(result, *st)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Level < result[j].Level
	})
	return result, nil
}
