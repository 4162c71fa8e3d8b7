package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/alexanderramin/attune/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecision(userID string, priority int, createdAt time.Time) *domain.RoutingDecision {
	return &domain.RoutingDecision{
		ID:                      uuid.New().String(),
		UserID:                  userID,
		SessionID:               "s1",
		ModelTag:                "adaptive-therapy-router-v2",
		Reasoning:               "crisis indicators detected",
		Priority:                priority,
		EffectivenessPrediction: 0.55,
		TriggerCount:            2,
		CreatedAt:               createdAt,
	}
}

func TestDecisionRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDecisionRepo(database)
	ctx := context.Background()

	d := newDecision("u1", domain.PriorityUrgent, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.UserID, got.UserID)
	assert.Equal(t, d.ModelTag, got.ModelTag)
	assert.Equal(t, domain.PriorityUrgent, got.Priority)
	assert.InDelta(t, 0.55, got.EffectivenessPrediction, 1e-9)
	assert.Equal(t, 2, got.TriggerCount)
}

func TestDecisionRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDecisionRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecisionRepo_ListByUser_MostRecentFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDecisionRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	oldest := newDecision("u1", domain.PriorityRoutine, now.Add(-3*time.Hour))
	middle := newDecision("u1", domain.PriorityElevated, now.Add(-2*time.Hour))
	newest := newDecision("u1", domain.PriorityUrgent, now.Add(-1*time.Hour))
	for _, d := range []*domain.RoutingDecision{oldest, middle, newest} {
		require.NoError(t, repo.Create(ctx, d))
	}
	require.NoError(t, repo.Create(ctx, newDecision("u2", domain.PriorityRoutine, now)))

	got, err := repo.ListByUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, newest.ID, got[0].ID)
	assert.Equal(t, middle.ID, got[1].ID)
	assert.Equal(t, oldest.ID, got[2].ID)
}

func TestDecisionRepo_RejectsInvalidPriority(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteDecisionRepo(database)

	d := newDecision("u1", 9, time.Now().UTC())
	err := repo.Create(context.Background(), d)
	assert.Error(t, err)
}
