package service

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"certquiz/internal/models"
	"certquiz/internal/quiz"
	"certquiz/internal/repository/memstore"
)

const testDevice = "device-1"

func newTestService(t *testing.T) (*AttemptService, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	svc := NewAttemptService(store.Stores(), rand.New(rand.NewSource(1)))
	return svc, store
}

// seedBank loads n questions into one (category, level) bucket. Correct
// indexes cycle through all four positions.
func seedBank(t *testing.T, store *memstore.Store, category models.Category, level, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := store.UpsertQuestion(models.QuestionSeed{
			Category:     category,
			Level:        level,
			QuestionNo:   i,
			QuestionText: fmt.Sprintf("question %d", i),
			Choices:      []string{"choice A", "choice B", "choice C", "choice D"},
			CorrectIndex: i % 4,
			Explanation:  fmt.Sprintf("explanation %d", i),
		})
		if err != nil {
			t.Fatalf("seeding question %d: %v", i, err)
		}
	}
}

// correctDisplayIndexFor looks up the stored permutation for one question of
// an attempt and translates the canonical correct index into display space.
func correctDisplayIndexFor(t *testing.T, store *memstore.Store, attemptID string, questionID int64) int {
	t.Helper()
	assignments, err := store.AttemptQuestions(attemptID)
	if err != nil {
		t.Fatalf("loading assignments: %v", err)
	}
	question, err := store.QuestionByID(questionID)
	if err != nil || question == nil {
		t.Fatalf("loading question %d: %v", questionID, err)
	}
	for _, aq := range assignments {
		if aq.QuestionID == questionID {
			d := CorrectDisplayIndex(aq.ChoiceOrder, question.CorrectIndex)
			if d < 0 {
				t.Fatalf("correct index %d not in choice order %v", question.CorrectIndex, aq.ChoiceOrder)
			}
			return d
		}
	}
	t.Fatalf("question %d not assigned to attempt %s", questionID, attemptID)
	return -1
}

func wrongDisplayIndexFor(t *testing.T, store *memstore.Store, attemptID string, questionID int64) int {
	t.Helper()
	return (correctDisplayIndexFor(t, store, attemptID, questionID) + 1) % models.ChoiceCount
}

func TestStartLearnAttempt(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 10)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	if result.TotalQuestions != 10 {
		t.Errorf("TotalQuestions = %d, want 10", result.TotalQuestions)
	}

	view, err := svc.AttemptView(result.AttemptID, testDevice)
	if err != nil {
		t.Fatalf("AttemptView failed: %v", err)
	}
	if view.Attempt.Status != models.StatusInProgress {
		t.Errorf("Status = %q, want %q", view.Attempt.Status, models.StatusInProgress)
	}
	if view.Attempt.Category == nil || *view.Attempt.Category != models.CategoryNetworkSecurity {
		t.Errorf("Category = %v, want %q", view.Attempt.Category, models.CategoryNetworkSecurity)
	}
	if len(view.Questions) != 10 {
		t.Fatalf("got %d questions, want 10", len(view.Questions))
	}
	for i, q := range view.Questions {
		if q.DisplayOrder != i+1 {
			t.Errorf("question %d DisplayOrder = %d, want %d", i, q.DisplayOrder, i+1)
		}
		if len(q.DisplayChoices) != models.ChoiceCount {
			t.Errorf("question %d has %d choices, want %d", i, len(q.DisplayChoices), models.ChoiceCount)
		}
	}
	if len(view.AnsweredQuestionIDs) != 0 {
		t.Errorf("fresh attempt has %d answered questions, want 0", len(view.AnsweredQuestionIDs))
	}
}

func TestStartLearnAttemptValidation(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 3)

	tests := []struct {
		name     string
		mode     models.Mode
		category models.Category
		level    int
		wantKind quiz.Kind
	}{
		{"invalid mode", "cram", models.CategoryNetworkSecurity, 1, quiz.KindInvalidInput},
		{"missing category", models.ModeLearn, "", 1, quiz.KindConflict},
		{"missing level", models.ModeLearn, models.CategoryNetworkSecurity, 0, quiz.KindConflict},
		{"unknown category", models.ModeLearn, "存在しない分野", 1, quiz.KindInvalidInput},
		{"level out of range", models.ModeLearn, models.CategoryNetworkSecurity, 4, quiz.KindInvalidInput},
		{"empty bucket", models.ModeLearn, models.CategoryRiskManagement, 1, quiz.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.StartAttempt(testDevice, tt.mode, tt.category, tt.level)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if kind := quiz.ErrKind(err); kind != tt.wantKind {
				t.Errorf("error kind = %v, want %v (err: %v)", kind, tt.wantKind, err)
			}
		})
	}
}

func TestStartMockAttemptSamples(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 20)
	seedBank(t, store, models.CategorySecurityBasics, 2, 20)

	result, err := svc.StartAttempt(testDevice, models.ModeMock, "", 0)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	if result.TotalQuestions != MockQuestionCount {
		t.Errorf("TotalQuestions = %d, want %d", result.TotalQuestions, MockQuestionCount)
	}

	view, err := svc.AttemptView(result.AttemptID, testDevice)
	if err != nil {
		t.Fatalf("AttemptView failed: %v", err)
	}
	seen := map[int64]bool{}
	for _, q := range view.Questions {
		if seen[q.QuestionID] {
			t.Errorf("question %d sampled twice", q.QuestionID)
		}
		seen[q.QuestionID] = true
	}
}

func TestStartMockAttemptSmallBank(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 5)

	result, err := svc.StartAttempt(testDevice, models.ModeMock, "", 0)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	if result.TotalQuestions != 5 {
		t.Errorf("TotalQuestions = %d, want 5", result.TotalQuestions)
	}
}

func TestSubmitAnswerCorrectAndWrong(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 2)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	view, err := svc.AttemptView(result.AttemptID, testDevice)
	if err != nil {
		t.Fatalf("AttemptView failed: %v", err)
	}
	first := view.Questions[0].QuestionID
	second := view.Questions[1].QuestionID

	correctIdx := correctDisplayIndexFor(t, store, result.AttemptID, first)
	answer, err := svc.SubmitAnswer(result.AttemptID, testDevice, first, correctIdx)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !answer.IsCorrect {
		t.Error("correct choice scored as wrong")
	}
	if answer.CorrectDisplayIndex != correctIdx {
		t.Errorf("CorrectDisplayIndex = %d, want %d", answer.CorrectDisplayIndex, correctIdx)
	}
	if answer.Explanation == "" {
		t.Error("explanation missing from answer result")
	}

	wrongIdx := wrongDisplayIndexFor(t, store, result.AttemptID, second)
	answer, err = svc.SubmitAnswer(result.AttemptID, testDevice, second, wrongIdx)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if answer.IsCorrect {
		t.Error("wrong choice scored as correct")
	}

	wq, err := store.WrongQuestion(testDevice, second)
	if err != nil {
		t.Fatalf("WrongQuestion failed: %v", err)
	}
	if wq == nil || !wq.IsActive || wq.WrongCount != 1 {
		t.Errorf("miss not recorded: %+v", wq)
	}
	if wq2, _ := store.WrongQuestion(testDevice, first); wq2 != nil {
		t.Errorf("correct answer created a wrong-question row: %+v", wq2)
	}
}

func TestSubmitAnswerRejections(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 2)
	seedBank(t, store, models.CategorySecurityBasics, 1, 1)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	view, err := svc.AttemptView(result.AttemptID, testDevice)
	if err != nil {
		t.Fatalf("AttemptView failed: %v", err)
	}
	first := view.Questions[0].QuestionID

	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, first, -1); quiz.ErrKind(err) != quiz.KindInvalidInput {
		t.Errorf("negative index: kind = %v, want invalid input", quiz.ErrKind(err))
	}
	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, first, models.ChoiceCount); quiz.ErrKind(err) != quiz.KindInvalidInput {
		t.Errorf("out-of-range index: kind = %v, want invalid input", quiz.ErrKind(err))
	}

	// A bank question that is not part of this attempt.
	outside, err := store.QuestionsByCategory(models.CategorySecurityBasics, 1)
	if err != nil || len(outside) == 0 {
		t.Fatalf("loading outside question: %v", err)
	}
	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, outside[0].ID, 0); quiz.ErrKind(err) != quiz.KindConflict {
		t.Errorf("outside question: kind = %v, want conflict", quiz.ErrKind(err))
	}

	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, first, 0); err != nil {
		t.Fatalf("first answer failed: %v", err)
	}
	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, first, 1); quiz.ErrKind(err) != quiz.KindConflict {
		t.Errorf("re-answer: kind = %v, want conflict", quiz.ErrKind(err))
	}
}

func TestSubmitAnswerAfterFinish(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 2)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	view, _ := svc.AttemptView(result.AttemptID, testDevice)
	first := view.Questions[0].QuestionID
	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, first, 0); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if _, err := svc.FinishAttempt(result.AttemptID, testDevice); err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	second := view.Questions[1].QuestionID
	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, second, 0); quiz.ErrKind(err) != quiz.KindConflict {
		t.Errorf("answer after finish: kind = %v, want conflict", quiz.ErrKind(err))
	}
	answers, _ := store.AttemptAnswers(result.AttemptID)
	if len(answers) != 1 {
		t.Errorf("got %d answer rows after rejected submit, want 1", len(answers))
	}
}

func TestFinishAttemptScoring(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 10)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	view, _ := svc.AttemptView(result.AttemptID, testDevice)

	// 7 correct, 3 wrong.
	for i, q := range view.Questions {
		var idx int
		if i < 7 {
			idx = correctDisplayIndexFor(t, store, result.AttemptID, q.QuestionID)
		} else {
			idx = wrongDisplayIndexFor(t, store, result.AttemptID, q.QuestionID)
		}
		if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, q.QuestionID, idx); err != nil {
			t.Fatalf("answer %d failed: %v", i, err)
		}
	}

	finish, err := svc.FinishAttempt(result.AttemptID, testDevice)
	if err != nil {
		t.Fatalf("FinishAttempt failed: %v", err)
	}
	if finish.CorrectCount != 7 {
		t.Errorf("CorrectCount = %d, want 7", finish.CorrectCount)
	}
	if finish.Score != 70 {
		t.Errorf("Score = %d, want 70", finish.Score)
	}

	attempt, _ := store.AttemptByID(result.AttemptID)
	if attempt.Status != models.StatusFinished {
		t.Errorf("Status = %q, want %q", attempt.Status, models.StatusFinished)
	}
	if attempt.FinishedAt == nil {
		t.Error("FinishedAt not set")
	}

	if _, err := svc.FinishAttempt(result.AttemptID, testDevice); quiz.ErrKind(err) != quiz.KindConflict {
		t.Errorf("second finish: kind = %v, want conflict", quiz.ErrKind(err))
	}
}

func TestFinishPartialAttempt(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 4)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	view, _ := svc.AttemptView(result.AttemptID, testDevice)
	q := view.Questions[0].QuestionID
	idx := correctDisplayIndexFor(t, store, result.AttemptID, q)
	if _, err := svc.SubmitAnswer(result.AttemptID, testDevice, q, idx); err != nil {
		t.Fatalf("answer failed: %v", err)
	}

	// Unanswered questions count against the score.
	finish, err := svc.FinishAttempt(result.AttemptID, testDevice)
	if err != nil {
		t.Fatalf("FinishAttempt failed: %v", err)
	}
	if finish.CorrectCount != 1 || finish.TotalQuestions != 4 {
		t.Errorf("got %d/%d, want 1/4", finish.CorrectCount, finish.TotalQuestions)
	}
	if finish.Score != 25 {
		t.Errorf("Score = %d, want 25", finish.Score)
	}
}

func TestConcurrentFinishOneWins(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 3)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.FinishAttempt(result.AttemptID, testDevice)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case quiz.ErrKind(err) == quiz.KindConflict:
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("%d finishes succeeded, want exactly 1", wins)
	}
}

func TestAbandonAttemptIdempotent(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 3)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}

	if err := svc.AbandonAttempt(result.AttemptID, testDevice); err != nil {
		t.Fatalf("AbandonAttempt failed: %v", err)
	}
	attempt, _ := store.AttemptByID(result.AttemptID)
	if attempt.Status != models.StatusAbandoned {
		t.Errorf("Status = %q, want %q", attempt.Status, models.StatusAbandoned)
	}

	// Repeat abandons succeed without changing anything.
	if err := svc.AbandonAttempt(result.AttemptID, testDevice); err != nil {
		t.Fatalf("second AbandonAttempt failed: %v", err)
	}
	after, _ := store.AttemptByID(result.AttemptID)
	if after.Status != models.StatusAbandoned {
		t.Errorf("Status changed to %q on repeat abandon", after.Status)
	}
}

func TestAttemptOwnership(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 3)

	result, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}

	if _, err := svc.AttemptView(result.AttemptID, "device-2"); quiz.ErrKind(err) != quiz.KindForbidden {
		t.Errorf("other device view: kind = %v, want forbidden", quiz.ErrKind(err))
	}
	if _, err := svc.FinishAttempt(result.AttemptID, "device-2"); quiz.ErrKind(err) != quiz.KindForbidden {
		t.Errorf("other device finish: kind = %v, want forbidden", quiz.ErrKind(err))
	}
	if _, err := svc.AttemptView("no-such-attempt", testDevice); quiz.ErrKind(err) != quiz.KindNotFound {
		t.Errorf("missing attempt: kind = %v, want not found", quiz.ErrKind(err))
	}
}

func TestWrongModeLifecycle(t *testing.T) {
	svc, store := newTestService(t)
	seedBank(t, store, models.CategoryNetworkSecurity, 1, 4)

	// Nothing in the review queue yet.
	if _, err := svc.StartAttempt(testDevice, models.ModeWrong, "", 0); quiz.ErrKind(err) != quiz.KindConflict {
		t.Fatalf("empty queue: kind = %v, want conflict", quiz.ErrKind(err))
	}

	// Miss two questions in a learn attempt.
	learn, err := svc.StartAttempt(testDevice, models.ModeLearn, models.CategoryNetworkSecurity, 1)
	if err != nil {
		t.Fatalf("StartAttempt failed: %v", err)
	}
	view, _ := svc.AttemptView(learn.AttemptID, testDevice)
	missed := []int64{view.Questions[0].QuestionID, view.Questions[1].QuestionID}
	for _, qid := range missed {
		idx := wrongDisplayIndexFor(t, store, learn.AttemptID, qid)
		if _, err := svc.SubmitAnswer(learn.AttemptID, testDevice, qid, idx); err != nil {
			t.Fatalf("answer failed: %v", err)
		}
	}
	if _, err := svc.FinishAttempt(learn.AttemptID, testDevice); err != nil {
		t.Fatalf("finish failed: %v", err)
	}

	review, err := svc.StartAttempt(testDevice, models.ModeWrong, "", 0)
	if err != nil {
		t.Fatalf("wrong-mode start failed: %v", err)
	}
	if review.TotalQuestions != 2 {
		t.Fatalf("TotalQuestions = %d, want 2", review.TotalQuestions)
	}

	// Answering correctly in review clears the queue entry but keeps the
	// miss count as history.
	idx := correctDisplayIndexFor(t, store, review.AttemptID, missed[0])
	if _, err := svc.SubmitAnswer(review.AttemptID, testDevice, missed[0], idx); err != nil {
		t.Fatalf("review answer failed: %v", err)
	}
	wq, _ := store.WrongQuestion(testDevice, missed[0])
	if wq == nil || wq.IsActive {
		t.Errorf("cleared question still active: %+v", wq)
	}
	if wq.WrongCount != 1 {
		t.Errorf("WrongCount = %d, want 1 after clearing", wq.WrongCount)
	}
	if wq.ClearedAt == nil {
		t.Error("ClearedAt not set")
	}

	ids, _ := store.ActiveIDs(testDevice)
	if len(ids) != 1 || ids[0] != missed[1] {
		t.Errorf("ActiveIDs = %v, want [%d]", ids, missed[1])
	}

	// Missing it again re-activates the entry and bumps the count.
	idx = wrongDisplayIndexFor(t, store, review.AttemptID, missed[1])
	if _, err := svc.SubmitAnswer(review.AttemptID, testDevice, missed[1], idx); err != nil {
		t.Fatalf("review answer failed: %v", err)
	}
	wq, _ = store.WrongQuestion(testDevice, missed[1])
	if wq.WrongCount != 2 || !wq.IsActive {
		t.Errorf("repeat miss not accumulated: %+v", wq)
	}
}
