package service

import (
	"certquiz/internal/models"
	"certquiz/internal/quiz"
)

// RecentAttemptLimit caps the history shown on the summary page.
const RecentAttemptLimit = 10

// SummaryService aggregates a device's progress for the dashboard.
type SummaryService struct {
	questions quiz.QuestionStore
	attempts  quiz.AttemptStore
	wrong     quiz.WrongQuestionStore
	stats     quiz.StatsStore
}

// NewSummaryService creates a new summary service
func NewSummaryService(stores quiz.Stores) *SummaryService {
	return &SummaryService{
		questions: stores.Questions,
		attempts:  stores.Attempts,
		wrong:     stores.Wrong,
		stats:     stores.Stats,
	}
}

// CategoryStatView is one (category, level) bucket of the stats table.
// LevelLabel carries the display name (基礎/応用/実践) so clients render levels
// without holding their own mapping.
type CategoryStatView struct {
	Category   models.Category `json:"category"`
	Level      int             `json:"level"`
	LevelLabel string          `json:"levelLabel"`
	Total      int             `json:"total"`
	Answered   int             `json:"answered"`
	Correct    int             `json:"correct"`
}

func statView(st models.CategoryStat) CategoryStatView {
	return CategoryStatView{
		Category:   st.Category,
		Level:      st.Level,
		LevelLabel: models.LevelLabels[st.Level],
		Total:      st.Total,
		Answered:   st.Answered,
		Correct:    st.Correct,
	}
}

// Summary is the dashboard payload.
type Summary struct {
	QuestionCount  int                `json:"questionCount"`
	CategoryStats  []CategoryStatView `json:"categoryStats"`
	RecentAttempts []AttemptSummary   `json:"recentAttempts"`
	WrongCount     int                `json:"wrongCount"`
}

// DeviceSummary collects bank size, per-bucket stats from finished attempts,
// recent attempt history and the active review-queue size for one device.
func (s *SummaryService) DeviceSummary(deviceID string) (*Summary, error) {
	count, err := s.questions.CountQuestions()
	if err != nil {
		return nil, quiz.Internal(err)
	}

	stats, err := s.stats.CategoryStats(deviceID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	statViews := make([]CategoryStatView, 0, len(stats))
	for _, st := range stats {
		statViews = append(statViews, statView(st))
	}

	recent, err := s.attempts.RecentAttempts(deviceID, RecentAttemptLimit)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	recentViews := make([]AttemptSummary, 0, len(recent))
	for i := range recent {
		recentViews = append(recentViews, summarize(&recent[i]))
	}

	wrongIDs, err := s.wrong.ActiveIDs(deviceID)
	if err != nil {
		return nil, quiz.Internal(err)
	}

	return &Summary{
		QuestionCount:  count,
		CategoryStats:  statViews,
		RecentAttempts: recentViews,
		WrongCount:     len(wrongIDs),
	}, nil
}

// CategoryStats exposes the per-bucket aggregation on its own.
func (s *SummaryService) CategoryStats(deviceID string) ([]CategoryStatView, error) {
	stats, err := s.stats.CategoryStats(deviceID)
	if err != nil {
		return nil, quiz.Internal(err)
	}
	views := make([]CategoryStatView, 0, len(stats))
	for _, st := range stats {
		views = append(views, statView(st))
	}
	return views, nil
}
