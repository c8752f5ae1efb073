package models

import "time"

// Mode selects how questions are picked when an attempt starts.
type Mode string

const (
	ModeLearn Mode = "learn" // one category/level, natural order
	ModeMock  Mode = "mock"  // random sample of the whole bank
	ModeWrong Mode = "wrong" // the device's active review queue
)

// Valid reports whether m is a known attempt mode.
func (m Mode) Valid() bool {
	return m == ModeLearn || m == ModeMock || m == ModeWrong
}

// AttemptStatus is the attempt lifecycle state. Transitions only move
// forward: in_progress -> finished or in_progress -> abandoned.
type AttemptStatus string

const (
	StatusInProgress AttemptStatus = "in_progress"
	StatusFinished   AttemptStatus = "finished"
	StatusAbandoned  AttemptStatus = "abandoned"
)

// Terminal reports whether the status permits no further transitions.
func (s AttemptStatus) Terminal() bool {
	return s == StatusFinished || s == StatusAbandoned
}

// Attempt represents one quiz run owned by a single device. CorrectCount is
// authoritative only once Status is StatusFinished.
type Attempt struct {
	ID             string
	DeviceID       string
	Mode           Mode
	Category       *Category // set only for learn mode
	Level          *int      // set only for learn mode
	Status         AttemptStatus
	TotalQuestions int
	CorrectCount   int
	StartedAt      time.Time
	FinishedAt     *time.Time
}

// AttemptQuestion associates a question with an attempt. DisplayOrder is
// 1-based and contiguous within the attempt. ChoiceOrder is a permutation of
// {0..3} with ChoiceOrder[displayIndex] = originalIndex; it is written once
// at attempt start and never changes.
type AttemptQuestion struct {
	AttemptID    string
	QuestionID   int64
	DisplayOrder int
	ChoiceOrder  []int
}

// AttemptAnswer is one recorded response. Both the display-space index the
// user picked and its canonical translation are kept.
type AttemptAnswer struct {
	AttemptID           string
	QuestionID          int64
	ChosenDisplayIndex  int
	ChosenOriginalIndex int
	IsCorrect           bool
	AnsweredAt          time.Time
}
