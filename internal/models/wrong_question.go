package models

import "time"

// WrongQuestion tracks one question a device has missed. IsActive marks
// membership in the review queue; a later correct answer deactivates the
// record but keeps WrongCount, and a further miss reactivates it and
// increments the counter. Records are never deleted.
type WrongQuestion struct {
	DeviceID    string
	QuestionID  int64
	WrongCount  int
	LastWrongAt time.Time
	ClearedAt   *time.Time
	IsActive    bool
}
