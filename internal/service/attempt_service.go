package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"certquiz/internal/models"
	"certquiz/internal/quiz"
)

// MockQuestionCount is the sample size for a mock exam. A smaller bank
// degrades to all available questions rather than failing.
const MockQuestionCount = 30

// AttemptService is the attempt lifecycle engine: it selects and orders
// questions per mode, shuffles choices, scores submitted answers through the
// stored choice-order indirection, and drives the
// in_progress -> finished | abandoned state machine.
type AttemptService struct {
	questions quiz.QuestionStore
	attempts  quiz.AttemptStore
	wrong     quiz.WrongQuestionStore

	mu  sync.Mutex // guards rng, which is not goroutine-safe
	rng *rand.Rand
	now func() time.Time
}

// NewAttemptService creates the engine. rng is injected so tests can pass a
// fixed seed and assert exact orderings.
func NewAttemptService(stores quiz.Stores, rng *rand.Rand) *AttemptService {
	return &AttemptService{
		questions: stores.Questions,
		attempts:  stores.Attempts,
		wrong:     stores.Wrong,
		rng:       rng,
		now:       time.Now,
	}
}

// StartResult is the client-safe outcome of StartAttempt.
type StartResult struct {
	AttemptID      string `json:"attemptId"`
	TotalQuestions int    `json:"totalQuestions"`
}

// QuestionView is one question as shown to the user: choices are already
// permuted for display and the correct index is absent.
type QuestionView struct {
	QuestionID     int64           `json:"questionId"`
	DisplayOrder   int             `json:"displayOrder"`
	QuestionText   string          `json:"questionText"`
	DisplayChoices []string        `json:"displayChoices"`
	Category       models.Category `json:"category"`
	Level          int             `json:"level"`
}

// AttemptSummary is the attempt header exposed to clients.
type AttemptSummary struct {
	AttemptID      string               `json:"attemptId"`
	Mode           models.Mode          `json:"mode"`
	Category       *models.Category     `json:"category"`
	Level          *int                 `json:"level"`
	Status         models.AttemptStatus `json:"status"`
	TotalQuestions int                  `json:"totalQuestions"`
	CorrectCount   int                  `json:"correctCount"`
	StartedAt      time.Time            `json:"startedAt"`
	FinishedAt     *time.Time           `json:"finishedAt"`
}

// AttemptView is the resume-capable projection of one attempt.
type AttemptView struct {
	Attempt             AttemptSummary `json:"attempt"`
	Questions           []QuestionView `json:"questions"`
	AnsweredQuestionIDs []int64        `json:"answeredQuestionIds"`
}

// AnswerResult reports one scored submission. CorrectDisplayIndex is the
// display-space position of the right answer, for highlighting.
type AnswerResult struct {
	IsCorrect           bool   `json:"isCorrect"`
	CorrectDisplayIndex int    `json:"correctDisplayIndex"`
	Explanation         string `json:"explanation"`
}

// FinishResult reports the final score of a finished attempt.
type FinishResult struct {
	AttemptID      string `json:"attemptId"`
	TotalQuestions int    `json:"totalQuestions"`
	CorrectCount   int    `json:"correctCount"`
	Score          int    `json:"score"` // percentage, rounded
}

// StartAttempt selects questions for the mode, shuffles each question's
// choices independently, and persists the attempt with its assignments as
// one unit. category and level are only consulted for learn mode.
func (s *AttemptService) StartAttempt(deviceID string, mode models.Mode, category models.Category, level int) (*StartResult, error) {
	if !mode.Valid() {
		return nil, quiz.InvalidInput(fmt.Sprintf("invalid mode %q", mode))
	}

	questions, err := s.selectQuestions(deviceID, mode, category, level)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, quiz.Conflict("no questions found")
	}

	attempt := &models.Attempt{
		ID:             uuid.New().String(),
		DeviceID:       deviceID,
		Mode:           mode,
		Status:         models.StatusInProgress,
		TotalQuestions: len(questions),
		StartedAt:      s.now(),
	}
	if mode == models.ModeLearn {
		c := category
		l := level
		attempt.Category = &c
		attempt.Level = &l
	}

	assignments := make([]models.AttemptQuestion, 0, len(questions))
	s.mu.Lock()
	for i, q := range questions {
		_, choiceOrder := ShuffleChoices(s.rng, q.Choices)
		assignments = append(assignments, models.AttemptQuestion{
			AttemptID:    attempt.ID,
			QuestionID:   q.ID,
			DisplayOrder: i + 1,
			ChoiceOrder:  choiceOrder,
		})
	}
	s.mu.Unlock()

	if err := s.attempts.CreateAttempt(attempt, assignments); err != nil {
		return nil, quiz.Internal(err)
	}

	return &StartResult{AttemptID: attempt.ID, TotalQuestions: len(questions)}, nil
}

func (s *AttemptService) selectQuestions(deviceID string, mode models.Mode, category models.Category, level int) ([]models.Question, error) {
	switch mode {
	case models.ModeLearn:
		if category == "" || level == 0 {
			return nil, quiz.Conflict("category and level required for learn mode")
		}
		if !category.Valid() {
			return nil, quiz.InvalidInput(fmt.Sprintf("invalid category %q", category))
		}
		if !models.ValidLevel(level) {
			return nil, quiz.InvalidInput(fmt.Sprintf("invalid level %d", level))
		}
		questions, err := s.questions.QuestionsByCategory(category, level)
		if err != nil {
			return nil, quiz.Internal(err)
		}
		return questions, nil

	case models.ModeMock:
		all, err := s.questions.AllQuestions()
		if err != nil {
			return nil, quiz.Internal(err)
		}
		return s.sample(all, MockQuestionCount), nil

	case models.ModeWrong:
		ids, err := s.wrong.ActiveIDs(deviceID)
		if err != nil {
			return nil, quiz.Internal(err)
		}
		if len(ids) == 0 {
			return nil, quiz.Conflict("no wrong questions to review")
		}
		questions, err := s.questions.QuestionsByIDs(ids)
		if err != nil {
			return nil, quiz.Internal(err)
		}
		s.mu.Lock()
		s.rng.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
		s.mu.Unlock()
		return questions, nil
	}
	return nil, quiz.InvalidInput(fmt.Sprintf("invalid mode %q", mode))
}

// sample draws up to count questions without replacement, order randomized.
func (s *AttemptService) sample(questions []models.Question, count int) []models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	perm := s.rng.Perm(len(questions))
	if count > len(perm) {
		count = len(perm)
	}
	picked := make([]models.Question, 0, count)
	for _, idx := range perm[:count] {
		picked = append(picked, questions[idx])
	}
	return picked
}

// loadOwnedAttempt enforces the ownership boundary every operation shares:
// a missing attempt is not-found, someone else's attempt is forbidden.
func (s *AttemptService) loadOwnedAttempt(attemptID, deviceID string) (*models.Attempt, error) {
	attempt, err := s.attempts.AttemptByID(attemptID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	if attempt == nil {
		return nil, quiz.NotFound("attempt not found")
	}
	if attempt.DeviceID != deviceID {
		return nil, quiz.Forbidden("attempt belongs to another device")
	}
	return attempt, nil
}

// AttemptView returns the attempt as the user sees it: header fields, the
// questions in display order with choices permuted by the stored
// choice_order, and which questions are already answered.
func (s *AttemptService) AttemptView(attemptID, deviceID string) (*AttemptView, error) {
	attempt, err := s.loadOwnedAttempt(attemptID, deviceID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.attempts.AttemptQuestions(attemptID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	answers, err := s.attempts.AttemptAnswers(attemptID)
	if err != nil {
		return nil, quiz.Internal(err)
	}

	ids := make([]int64, 0, len(assignments))
	for _, aq := range assignments {
		ids = append(ids, aq.QuestionID)
	}
	questions, err := s.questions.QuestionsByIDs(ids)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	byID := make(map[int64]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	views := make([]QuestionView, 0, len(assignments))
	for _, aq := range assignments {
		q, ok := byID[aq.QuestionID]
		if !ok {
			return nil, quiz.Internal(fmt.Errorf("attempt %s references missing question %d", attemptID, aq.QuestionID))
		}
		views = append(views, QuestionView{
			QuestionID:     q.ID,
			DisplayOrder:   aq.DisplayOrder,
			QuestionText:   q.QuestionText,
			DisplayChoices: ApplyChoiceOrder(q.Choices, aq.ChoiceOrder),
			Category:       q.Category,
			Level:          q.Level,
		})
	}

	answeredSet := make(map[int64]struct{}, len(answers))
	answeredIDs := make([]int64, 0, len(answers))
	for _, ans := range answers {
		if _, seen := answeredSet[ans.QuestionID]; seen {
			continue
		}
		answeredSet[ans.QuestionID] = struct{}{}
		answeredIDs = append(answeredIDs, ans.QuestionID)
	}

	return &AttemptView{
		Attempt:             summarize(attempt),
		Questions:           views,
		AnsweredQuestionIDs: answeredIDs,
	}, nil
}

func summarize(a *models.Attempt) AttemptSummary {
	return AttemptSummary{
		AttemptID:      a.ID,
		Mode:           a.Mode,
		Category:       a.Category,
		Level:          a.Level,
		Status:         a.Status,
		TotalQuestions: a.TotalQuestions,
		CorrectCount:   a.CorrectCount,
		StartedAt:      a.StartedAt,
		FinishedAt:     a.FinishedAt,
	}
}

// SubmitAnswer scores one response. The chosen display index is translated
// through the attempt's stored permutation back to the canonical index;
// correctness is decided server-side only. A miss feeds the review queue, a
// correct answer clears it.
func (s *AttemptService) SubmitAnswer(attemptID, deviceID string, questionID int64, chosenDisplayIndex int) (*AnswerResult, error) {
	if chosenDisplayIndex < 0 || chosenDisplayIndex >= models.ChoiceCount {
		return nil, quiz.InvalidInput(fmt.Sprintf("chosen display index %d out of range", chosenDisplayIndex))
	}

	attempt, err := s.loadOwnedAttempt(attemptID, deviceID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.StatusInProgress {
		return nil, quiz.Conflict("attempt already finished")
	}

	assignments, err := s.attempts.AttemptQuestions(attemptID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	var assignment *models.AttemptQuestion
	for i := range assignments {
		if assignments[i].QuestionID == questionID {
			assignment = &assignments[i]
			break
		}
	}
	if assignment == nil {
		return nil, quiz.Conflict("question not in this attempt")
	}

	answers, err := s.attempts.AttemptAnswers(attemptID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	for _, ans := range answers {
		if ans.QuestionID == questionID {
			return nil, quiz.Conflict("question already answered")
		}
	}

	question, err := s.questions.QuestionByID(questionID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	if question == nil {
		return nil, quiz.NotFound("question not found")
	}

	chosenOriginalIndex := assignment.ChoiceOrder[chosenDisplayIndex]
	isCorrect := chosenOriginalIndex == question.CorrectIndex
	correctDisplayIndex := CorrectDisplayIndex(assignment.ChoiceOrder, question.CorrectIndex)
	if correctDisplayIndex < 0 {
		return nil, quiz.Internal(errors.New("stored choice order is not a permutation"))
	}

	now := s.now()
	err = s.attempts.InsertAnswer(&models.AttemptAnswer{
		AttemptID:           attemptID,
		QuestionID:          questionID,
		ChosenDisplayIndex:  chosenDisplayIndex,
		ChosenOriginalIndex: chosenOriginalIndex,
		IsCorrect:           isCorrect,
		AnsweredAt:          now,
	})
	if err != nil {
		return nil, quiz.Internal(err)
	}

	if isCorrect {
		err = s.wrong.RecordCorrect(deviceID, questionID, now)
	} else {
		err = s.wrong.RecordMiss(deviceID, questionID, now)
	}
	if err != nil {
		return nil, quiz.Internal(err)
	}

	return &AnswerResult{
		IsCorrect:           isCorrect,
		CorrectDisplayIndex: correctDisplayIndex,
		Explanation:         question.Explanation,
	}, nil
}

// FinishAttempt recounts correct answers from the answer rows (distinct per
// question, so a duplicate row can never double-count) and transitions the
// attempt. The status-guarded update means exactly one of two concurrent
// finishes wins; the other gets the conflict.
func (s *AttemptService) FinishAttempt(attemptID, deviceID string) (*FinishResult, error) {
	attempt, err := s.loadOwnedAttempt(attemptID, deviceID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.StatusInProgress {
		return nil, quiz.Conflict("attempt already finished")
	}
	if attempt.TotalQuestions == 0 {
		return nil, quiz.Internal(fmt.Errorf("attempt %s has no questions", attemptID))
	}

	answers, err := s.attempts.AttemptAnswers(attemptID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	correctByQuestion := map[int64]bool{}
	for _, ans := range answers {
		if ans.IsCorrect {
			correctByQuestion[ans.QuestionID] = true
		}
	}
	correctCount := len(correctByQuestion)

	ok, err := s.attempts.FinishAttempt(attemptID, correctCount, s.now())
	if err != nil {
		return nil, quiz.Internal(err)
	}
	if !ok {
		return nil, quiz.Conflict("attempt already finished")
	}

	score := int(math.Round(float64(correctCount) / float64(attempt.TotalQuestions) * 100))
	return &FinishResult{
		AttemptID:      attemptID,
		TotalQuestions: attempt.TotalQuestions,
		CorrectCount:   correctCount,
		Score:          score,
	}, nil
}

// AbandonAttempt is the best-effort counterpart to finish: it transitions an
// in-progress attempt to abandoned, and reports success even when the
// attempt is already terminal.
func (s *AttemptService) AbandonAttempt(attemptID, deviceID string) error {
	if _, err := s.loadOwnedAttempt(attemptID, deviceID); err != nil {
		return err
	}
	if _, err := s.attempts.AbandonAttempt(attemptID, s.now()); err != nil {
		return quiz.Internal(err)
	}
	return nil
}
