package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/attune/internal/contract"
	"github.com/alexanderramin/attune/internal/domain"
)

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type messageDTO struct {
	IsUser  bool   `json:"is_user"`
	Content string `json:"content"`
}

type sessionDataDTO struct {
	Messages          []messageDTO `json:"messages"`
	CurrentMood       *float64     `json:"current_mood,omitempty"`
	InitialMood       *float64     `json:"initial_mood,omitempty"`
	CurrentTechnique  string       `json:"current_technique,omitempty"`
	InteractionDepth  int          `json:"interaction_depth,omitempty"`
	AvgResponseLength float64      `json:"avg_response_length,omitempty"`
}

type currentMetricsDTO struct {
	AvgResponseTimeSeconds float64 `json:"avg_response_time_seconds,omitempty"`
}

type evaluateRequest struct {
	UserID         string            `json:"user_id"`
	SessionID      string            `json:"session_id"`
	SessionData    sessionDataDTO    `json:"session_data"`
	CurrentMetrics currentMetricsDTO `json:"current_metrics"`
}

type triggerDTO struct {
	Type       string         `json:"type"`
	Severity   string         `json:"severity"`
	Data       map[string]any `json:"data"`
	Confidence float64        `json:"confidence"`
}

type adaptationSetDTO struct {
	TechniqueChanges       []string `json:"technique_changes"`
	ApproachAdjustments    []string `json:"approach_adjustments"`
	IntensityModifications []string `json:"intensity_modifications"`
	CrisisProtocols        []string `json:"crisis_protocols"`
}

type adaptationDTO struct {
	SessionID               string           `json:"session_id"`
	UserID                  string           `json:"user_id"`
	Adaptations             adaptationSetDTO `json:"adaptations"`
	Reasoning               string           `json:"reasoning"`
	EffectivenessPrediction float64          `json:"effectiveness_prediction"`
}

type recommendationsDTO struct {
	ImmediateActions   []string          `json:"immediate_actions"`
	SessionAdjustments *adaptationSetDTO `json:"session_adjustments"`
	FollowUpRequired   bool              `json:"follow_up_required"`
}

type evaluateResponse struct {
	Success          bool                `json:"success"`
	AdaptationNeeded bool                `json:"adaptation_needed"`
	Adaptations      *adaptationDTO      `json:"adaptations"`
	Triggers         []triggerDTO        `json:"triggers"`
	Recommendations  *recommendationsDTO `json:"recommendations"`
	Warnings         []string            `json:"warnings,omitempty"`
}

type errorResponse struct {
	Success          bool                `json:"success"`
	Error            string              `json:"error"`
	AdaptationNeeded bool                `json:"adaptation_needed"`
	Adaptations      *adaptationDTO      `json:"adaptations"`
	Triggers         []triggerDTO        `json:"triggers"`
	Recommendations  *recommendationsDTO `json:"recommendations"`
}

type createMoodRequest struct {
	UserID  string  `json:"user_id"`
	Overall float64 `json:"overall"`
}

type createAlertRequest struct {
	UserID string `json:"user_id"`
	Source string `json:"source,omitempty"`
	Note   string `json:"note,omitempty"`
}

type createOutcomeRequest struct {
	UserID            string  `json:"user_id"`
	SessionID         string  `json:"session_id,omitempty"`
	TechniqueName     string  `json:"technique_name"`
	UserResponseScore float64 `json:"user_response_score"`
}

type decisionDTO struct {
	ID                      string    `json:"id"`
	UserID                  string    `json:"user_id"`
	SessionID               string    `json:"session_id"`
	ModelTag                string    `json:"model_tag"`
	Reasoning               string    `json:"reasoning"`
	Priority                int       `json:"priority"`
	EffectivenessPrediction float64   `json:"effectiveness_prediction"`
	TriggerCount            int       `json:"trigger_count"`
	CreatedAt               time.Time `json:"created_at"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEvaluateError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	snap := domain.SessionSnapshot{
		CurrentMood:      req.SessionData.CurrentMood,
		InitialMood:      req.SessionData.InitialMood,
		CurrentTechnique: req.SessionData.CurrentTechnique,
		InteractionDepth: req.SessionData.InteractionDepth,
		AvgResponseLen:   req.SessionData.AvgResponseLength,
		AvgResponseSec:   req.CurrentMetrics.AvgResponseTimeSeconds,
	}
	for _, m := range req.SessionData.Messages {
		snap.Messages = append(snap.Messages, domain.Message{IsUser: m.IsUser, Content: m.Content})
	}

	out, err := s.evaluation.Evaluate(r.Context(), contract.EvaluateRequest{
		UserID:    req.UserID,
		SessionID: req.SessionID,
		Snapshot:  snap,
	})
	if err != nil {
		var evalErr *contract.EvaluateError
		if errors.As(err, &evalErr) && evalErr.Code != contract.ErrInternalError {
			writeEvaluateError(w, http.StatusBadRequest, evalErr.Message)
			return
		}
		writeEvaluateError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toEvaluateResponse(out))
}

func (s *Server) handleCreateMood(w http.ResponseWriter, r *http.Request) {
	var req createMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	entry, err := s.intake.RecordMood(r.Context(), req.UserID, req.Overall)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         entry.ID,
		"user_id":    entry.UserID,
		"overall":    entry.Overall,
		"created_at": entry.CreatedAt,
	})
}

func (s *Server) handleCreateAlert(w http.ResponseWriter, r *http.Request) {
	var req createAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	alert, err := s.intake.RecordCrisisAlert(r.Context(), req.UserID, req.Source, req.Note)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         alert.ID,
		"user_id":    alert.UserID,
		"source":     alert.Source,
		"created_at": alert.CreatedAt,
	})
}

func (s *Server) handleCreateOutcome(w http.ResponseWriter, r *http.Request) {
	var req createOutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	outcome, err := s.intake.RecordTechniqueOutcome(r.Context(), req.UserID, req.SessionID, req.TechniqueName, req.UserResponseScore)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":             outcome.ID,
		"user_id":        outcome.UserID,
		"technique_name": outcome.TechniqueName,
		"created_at":     outcome.CreatedAt,
	})
}

func (s *Server) handleListDecisions(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if strings.TrimSpace(userID) == "" {
		badRequest(w, "user_id is required")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	decisions, err := s.decisions.ListByUser(r.Context(), userID, limit)
	if err != nil {
		internalError(w)
		return
	}

	out := make([]decisionDTO, 0, len(decisions))
	for _, d := range decisions {
		out = append(out, decisionDTO{
			ID:                      d.ID,
			UserID:                  d.UserID,
			SessionID:               d.SessionID,
			ModelTag:                d.ModelTag,
			Reasoning:               d.Reasoning,
			Priority:                d.Priority,
			EffectivenessPrediction: d.EffectivenessPrediction,
			TriggerCount:            d.TriggerCount,
			CreatedAt:               d.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"decisions": out})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ─────────────────────────────────────────────
// Conversion helpers
// ─────────────────────────────────────────────

func toEvaluateResponse(out *contract.EvaluateResponse) evaluateResponse {
	resp := evaluateResponse{
		Success:          true,
		AdaptationNeeded: out.AdaptationNeeded,
		Triggers:         make([]triggerDTO, 0, len(out.Triggers)),
		Warnings:         out.Warnings,
	}

	for _, t := range out.Triggers {
		resp.Triggers = append(resp.Triggers, triggerDTO{
			Type:       string(t.Type),
			Severity:   string(t.Severity),
			Data:       t.Data,
			Confidence: t.Confidence,
		})
	}

	recs := &recommendationsDTO{
		ImmediateActions: out.ImmediateActions,
		FollowUpRequired: out.FollowUpRequired,
	}
	if recs.ImmediateActions == nil {
		recs.ImmediateActions = []string{}
	}

	if out.Adaptation != nil {
		set := toAdaptationSetDTO(out.Adaptation.Adaptations)
		resp.Adaptations = &adaptationDTO{
			SessionID:               out.Adaptation.SessionID,
			UserID:                  out.Adaptation.UserID,
			Adaptations:             set,
			Reasoning:               out.Adaptation.Reasoning,
			EffectivenessPrediction: out.Adaptation.EffectivenessPrediction,
		}
		recs.SessionAdjustments = &set
	}

	resp.Recommendations = recs
	return resp
}

func toAdaptationSetDTO(set domain.AdaptationSet) adaptationSetDTO {
	return adaptationSetDTO{
		TechniqueChanges:       emptyIfNil(set.TechniqueChanges),
		ApproachAdjustments:    emptyIfNil(set.ApproachAdjustments),
		IntensityModifications: emptyIfNil(set.IntensityModifications),
		CrisisProtocols:        emptyIfNil(set.CrisisProtocols),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeEvaluateError keeps the evaluate endpoint's error envelope shape
// stable for frontend consumers.
func writeEvaluateError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{
		Success:          false,
		Error:            msg,
		AdaptationNeeded: false,
		Adaptations:      nil,
		Triggers:         []triggerDTO{},
		Recommendations:  nil,
	})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
