package service

import (
	"context"

	"github.com/alexanderramin/attune/internal/contract"
	"github.com/alexanderramin/attune/internal/domain"
)

type EvaluationService interface {
	Evaluate(ctx context.Context, req contract.EvaluateRequest) (*contract.EvaluateResponse, error)
}

type IntakeService interface {
	RecordMood(ctx context.Context, userID string, overall float64) (*domain.MoodEntry, error)
	RecordCrisisAlert(ctx context.Context, userID, source, note string) (*domain.CrisisAlert, error)
	RecordTechniqueOutcome(ctx context.Context, userID, sessionID, technique string, score float64) (*domain.TechniqueOutcome, error)
}

type DecisionService interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.RoutingDecision, error)
}
