package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/attune/internal/adaptation"
	"github.com/alexanderramin/attune/internal/analysis"
	"github.com/alexanderramin/attune/internal/contract"
	"github.com/alexanderramin/attune/internal/domain"
	"github.com/alexanderramin/attune/internal/repository"
	"github.com/google/uuid"
)

// DefaultModelTag is recorded on routing decision rows unless overridden.
const DefaultModelTag = "adaptive-therapy-router-v2"

type evaluationService struct {
	moods      repository.MoodRepo
	alerts     repository.CrisisAlertRepo
	techniques repository.TechniqueRepo
	decisions  repository.DecisionRepo
	modelTag   string
	observer   UseCaseObserver
}

// NewEvaluationService wires the analyzers over the stored-history
// repositories. modelTag may be empty to use the default; observer may be
// nil to disable telemetry.
func NewEvaluationService(
	moods repository.MoodRepo,
	alerts repository.CrisisAlertRepo,
	techniques repository.TechniqueRepo,
	decisions repository.DecisionRepo,
	modelTag string,
	observer UseCaseObserver,
) EvaluationService {
	if modelTag == "" {
		modelTag = DefaultModelTag
	}
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &evaluationService{
		moods:      moods,
		alerts:     alerts,
		techniques: techniques,
		decisions:  decisions,
		modelTag:   modelTag,
		observer:   observer,
	}
}

// Evaluate runs every analyzer over the session snapshot and stored history,
// then generates and logs an adaptation when any trigger reaches high or
// critical severity. Analyzer fetch failures degrade to "no trigger" plus a
// named warning; they never fail the evaluation.
func (s *evaluationService) Evaluate(ctx context.Context, req contract.EvaluateRequest) (*contract.EvaluateResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, &contract.EvaluateError{Code: contract.ErrInvalidUserID, Message: "user_id is required"}
	}
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, &contract.EvaluateError{Code: contract.ErrInvalidSessionID, Message: "session_id is required"}
	}

	started := time.Now()
	now := time.Now().UTC()
	if req.Now != nil {
		now = req.Now.UTC()
	}

	var triggers []domain.Trigger
	var warnings []string

	// Mood decline: needs the trailing week of entries.
	entries, err := s.moods.ListRecent(ctx, req.UserID,
		now.Add(-analysis.MoodLookbackDays*24*time.Hour), analysis.MoodEntryLimit)
	if err != nil {
		warnings = append(warnings, "mood_history_unavailable")
		s.observeFetchFailure(ctx, "mood_history", req.UserID, err)
	} else if t := analysis.AnalyzeMoodDecline(entries, req.Snapshot); t != nil {
		triggers = append(triggers, *t)
	}

	// Engagement: snapshot only.
	if t := analysis.AnalyzeEngagement(req.Snapshot); t != nil {
		triggers = append(triggers, *t)
	}

	// Crisis: keyword scan plus trailing-day alert count.
	alertCount, err := s.alerts.CountSince(ctx, req.UserID,
		now.Add(-analysis.AlertLookbackHours*time.Hour))
	if err != nil {
		warnings = append(warnings, "crisis_history_unavailable")
		s.observeFetchFailure(ctx, "crisis_history", req.UserID, err)
		alertCount = 0
	}
	if t := analysis.AnalyzeCrisis(req.Snapshot, alertCount); t != nil {
		triggers = append(triggers, *t)
	}

	// Technique effectiveness: only when the session names a technique.
	if req.Snapshot.CurrentTechnique != "" {
		scores, err := s.techniques.ListRecentScores(ctx, req.UserID, req.Snapshot.CurrentTechnique,
			now.Add(-analysis.TechniqueLookbackDays*24*time.Hour), analysis.TechniqueScoreLimit)
		if err != nil {
			warnings = append(warnings, "technique_history_unavailable")
			s.observeFetchFailure(ctx, "technique_history", req.UserID, err)
		} else if t := analysis.AnalyzeTechnique(req.Snapshot.CurrentTechnique, scores); t != nil {
			triggers = append(triggers, *t)
		}
	}

	// Breakthrough: snapshot only.
	if t := analysis.AnalyzeBreakthrough(req.Snapshot); t != nil {
		triggers = append(triggers, *t)
	}

	resp := &contract.EvaluateResponse{
		GeneratedAt:      now,
		Triggers:         triggers,
		ImmediateActions: adaptation.ImmediateActions(triggers),
		FollowUpRequired: adaptation.FollowUpRequired(triggers),
		Warnings:         warnings,
	}

	if domain.AnyAtLeast(triggers, domain.SeverityHigh) {
		plan := adaptation.BuildPlan(req.SessionID, req.UserID, triggers)
		resp.AdaptationNeeded = true
		resp.Adaptation = plan
		s.logDecision(ctx, req, plan, triggers, now)
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "evaluate_session",
		Duration:  time.Since(started),
		Success:   true,
		StartedAt: started,
		Fields: map[string]any{
			"user_id":           req.UserID,
			"session_id":        req.SessionID,
			"trigger_count":     len(triggers),
			"max_severity":      string(domain.MaxSeverity(triggers)),
			"adaptation_needed": resp.AdaptationNeeded,
			"degraded_signals":  len(warnings),
		},
	})

	return resp, nil
}

// logDecision writes the routing decision row. Failures are reported to the
// observer and otherwise swallowed so the evaluation still succeeds.
func (s *evaluationService) logDecision(ctx context.Context, req contract.EvaluateRequest, plan *domain.SessionAdaptation, triggers []domain.Trigger, now time.Time) {
	d := &domain.RoutingDecision{
		ID:                      uuid.New().String(),
		UserID:                  req.UserID,
		SessionID:               req.SessionID,
		ModelTag:                s.modelTag,
		Reasoning:               plan.Reasoning,
		Priority:                domain.PriorityFor(domain.MaxSeverity(triggers)),
		EffectivenessPrediction: plan.EffectivenessPrediction,
		TriggerCount:            len(triggers),
		CreatedAt:               now,
	}
	if err := s.decisions.Create(ctx, d); err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "log_routing_decision",
			Success:   false,
			Err:       err,
			StartedAt: now,
			Fields: map[string]any{
				"user_id":    req.UserID,
				"session_id": req.SessionID,
			},
		})
	}
}

func (s *evaluationService) observeFetchFailure(ctx context.Context, source, userID string, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "history_fetch",
		Success:   false,
		Err:       err,
		StartedAt: time.Now().UTC(),
		Fields: map[string]any{
			"source":  source,
			"user_id": userID,
		},
	})
}
