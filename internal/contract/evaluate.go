// Package contract defines the request/response types shared by the HTTP
// API and the CLI when talking to the service layer.
package contract

import (
	"time"

	"github.com/alexanderramin/attune/internal/domain"
)

type EvaluateRequest struct {
	UserID    string
	SessionID string
	// Now overrides the evaluation clock; nil means time.Now. Used by tests
	// and replays.
	Now      *time.Time
	Snapshot domain.SessionSnapshot
}

type EvaluateResponse struct {
	GeneratedAt      time.Time
	AdaptationNeeded bool
	Adaptation       *domain.SessionAdaptation
	Triggers         []domain.Trigger
	ImmediateActions []string
	FollowUpRequired bool
	// Warnings names analyzers whose stored-history lookups failed. Those
	// analyzers contribute no trigger, so an empty trigger list alongside
	// warnings means "unknown", not "healthy".
	Warnings []string
}

type EvaluateErrorCode string

const (
	ErrInvalidUserID    EvaluateErrorCode = "INVALID_USER_ID"
	ErrInvalidSessionID EvaluateErrorCode = "INVALID_SESSION_ID"
	ErrInternalError    EvaluateErrorCode = "INTERNAL_ERROR"
)

type EvaluateError struct {
	Code    EvaluateErrorCode
	Message string
}

func (e *EvaluateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
