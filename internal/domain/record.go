package domain

import "time"

// TimestampLayout is the wall-clock format used in the history file,
// second precision, local time.
const TimestampLayout = "2006-01-02 15:04:05"

// MoodRecord is one row of the mood history. Records are immutable once
// appended; append order is chronological order. Mood holds the raw label
// as received, not the classified category.
type MoodRecord struct {
	Timestamp time.Time
	UserHash  string
	Mood      string
}

// Category classifies the record's raw label.
func (r MoodRecord) Category() MoodCategory {
	return Classify(r.Mood)
}
