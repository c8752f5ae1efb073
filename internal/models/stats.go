package models

// CategoryStat aggregates a device's progress for one (category, level)
// bucket. Answered and Correct count distinct questions across the device's
// finished attempts only.
type CategoryStat struct {
	Category Category
	Level    int
	Total    int
	Answered int
	Correct  int
}
