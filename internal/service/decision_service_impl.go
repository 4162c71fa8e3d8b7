package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/attune/internal/domain"
	"github.com/alexanderramin/attune/internal/repository"
)

const (
	defaultDecisionLimit = 20
	maxDecisionLimit     = 100
)

type decisionService struct {
	decisions repository.DecisionRepo
}

// NewDecisionService creates the read-side service over the routing
// decision log.
func NewDecisionService(decisions repository.DecisionRepo) DecisionService {
	return &decisionService{decisions: decisions}
}

func (s *decisionService) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.RoutingDecision, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if limit <= 0 {
		limit = defaultDecisionLimit
	}
	if limit > maxDecisionLimit {
		limit = maxDecisionLimit
	}
	return s.decisions.ListByUser(ctx, userID, limit)
}
