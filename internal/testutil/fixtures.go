package testutil

import (
	"time"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/google/uuid"
)

// MoodEntry options
type MoodOption func(*domain.MoodEntry)

func WithMoodCreatedAt(t time.Time) MoodOption {
	return func(e *domain.MoodEntry) {
		e.CreatedAt = t
	}
}

func NewTestMood(userID string, overall float64, opts ...MoodOption) *domain.MoodEntry {
	e := &domain.MoodEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Overall:   overall,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CrisisAlert options
type AlertOption func(*domain.CrisisAlert)

func WithAlertCreatedAt(t time.Time) AlertOption {
	return func(a *domain.CrisisAlert) {
		a.CreatedAt = t
	}
}

func WithAlertSource(source string) AlertOption {
	return func(a *domain.CrisisAlert) {
		a.Source = source
	}
}

func NewTestAlert(userID string, opts ...AlertOption) *domain.CrisisAlert {
	a := &domain.CrisisAlert{
		ID:        uuid.New().String(),
		UserID:    userID,
		Source:    "test",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TechniqueOutcome options
type OutcomeOption func(*domain.TechniqueOutcome)

func WithOutcomeCreatedAt(t time.Time) OutcomeOption {
	return func(o *domain.TechniqueOutcome) {
		o.CreatedAt = t
	}
}

func WithOutcomeSession(sessionID string) OutcomeOption {
	return func(o *domain.TechniqueOutcome) {
		o.SessionID = sessionID
	}
}

func NewTestOutcome(userID, technique string, score float64, opts ...OutcomeOption) *domain.TechniqueOutcome {
	o := &domain.TechniqueOutcome{
		ID:            uuid.New().String(),
		UserID:        userID,
		TechniqueName: technique,
		ResponseScore: score,
		CreatedAt:     time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Snapshot builds a SessionSnapshot from user-authored message contents.
func Snapshot(userMessages ...string) domain.SessionSnapshot {
	var msgs []domain.Message
	for _, c := range userMessages {
		msgs = append(msgs, domain.Message{IsUser: true, Content: c})
	}
	return domain.SessionSnapshot{Messages: msgs}
}

// SnapshotWithMoods builds a snapshot carrying initial and current mood.
func SnapshotWithMoods(initial, current float64, userMessages ...string) domain.SessionSnapshot {
	s := Snapshot(userMessages...)
	s.InitialMood = &initial
	s.CurrentMood = &current
	return s
}
