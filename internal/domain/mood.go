package domain

import "time"

// MoodEntry is one self-reported mood reading on a 1-10 scale.
type MoodEntry struct {
	ID        string
	UserID    string
	Overall   float64
	CreatedAt time.Time
}

// CrisisAlert is a previously raised crisis flag for a user. The evaluator
// only counts alerts over a trailing window; it never mutates them.
type CrisisAlert struct {
	ID        string
	UserID    string
	Source    string
	Note      string
	CreatedAt time.Time
}

// TechniqueOutcome records how well a user responded to one application of a
// therapeutic technique, scored 0-10.
type TechniqueOutcome struct {
	ID            string
	UserID        string
	SessionID     string
	TechniqueName string
	ResponseScore float64
	CreatedAt     time.Time
}
