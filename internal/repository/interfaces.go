package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/attune/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type MoodRepo interface {
	Create(ctx context.Context, e *domain.MoodEntry) error
	// ListRecent returns up to limit entries for the user created at or after
	// since, most recent first.
	ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]*domain.MoodEntry, error)
}

type CrisisAlertRepo interface {
	Create(ctx context.Context, a *domain.CrisisAlert) error
	// CountSince returns the number of alerts for the user created at or
	// after since.
	CountSince(ctx context.Context, userID string, since time.Time) (int, error)
}

type TechniqueRepo interface {
	Create(ctx context.Context, o *domain.TechniqueOutcome) error
	// ListRecentScores returns up to limit response scores for the
	// user+technique pair created at or after since, most recent first.
	ListRecentScores(ctx context.Context, userID, technique string, since time.Time, limit int) ([]float64, error)
}

type DecisionRepo interface {
	Create(ctx context.Context, d *domain.RoutingDecision) error
	GetByID(ctx context.Context, id string) (*domain.RoutingDecision, error)
	// ListByUser returns up to limit decisions for the user, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.RoutingDecision, error)
}
