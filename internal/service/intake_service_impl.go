package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/alexanderramin/attune/internal/repository"
	"github.com/google/uuid"
)

type intakeService struct {
	moods      repository.MoodRepo
	alerts     repository.CrisisAlertRepo
	techniques repository.TechniqueRepo
}

// NewIntakeService creates the write-side service for the evaluator's
// stored-history tables.
func NewIntakeService(
	moods repository.MoodRepo,
	alerts repository.CrisisAlertRepo,
	techniques repository.TechniqueRepo,
) IntakeService {
	return &intakeService{moods: moods, alerts: alerts, techniques: techniques}
}

func (s *intakeService) RecordMood(ctx context.Context, userID string, overall float64) (*domain.MoodEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if overall < 1 || overall > 10 {
		return nil, fmt.Errorf("overall mood must be between 1 and 10, got %.1f", overall)
	}

	e := &domain.MoodEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Overall:   overall,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.moods.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *intakeService) RecordCrisisAlert(ctx context.Context, userID, source, note string) (*domain.CrisisAlert, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if source == "" {
		source = "manual"
	}

	a := &domain.CrisisAlert{
		ID:        uuid.New().String(),
		UserID:    userID,
		Source:    source,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.alerts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *intakeService) RecordTechniqueOutcome(ctx context.Context, userID, sessionID, technique string, score float64) (*domain.TechniqueOutcome, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(technique) == "" {
		return nil, fmt.Errorf("technique_name is required")
	}
	if score < 0 || score > 10 {
		return nil, fmt.Errorf("user_response_score must be between 0 and 10, got %.1f", score)
	}

	o := &domain.TechniqueOutcome{
		ID:            uuid.New().String(),
		UserID:        userID,
		SessionID:     sessionID,
		TechniqueName: technique,
		ResponseScore: score,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.techniques.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
