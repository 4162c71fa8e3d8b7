package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/attune/internal/db"
	"github.com/alexanderramin/attune/internal/domain"
)

// SQLiteDecisionRepo implements DecisionRepo using a SQLite database.
type SQLiteDecisionRepo struct {
	db db.DBTX
}

// NewSQLiteDecisionRepo creates a new SQLiteDecisionRepo.
func NewSQLiteDecisionRepo(conn db.DBTX) *SQLiteDecisionRepo {
	return &SQLiteDecisionRepo{db: conn}
}

func (r *SQLiteDecisionRepo) Create(ctx context.Context, d *domain.RoutingDecision) error {
	query := `INSERT INTO ai_routing_decisions
		(id, user_id, session_id, model_tag, reasoning, priority, effectiveness_prediction, trigger_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.UserID,
		d.SessionID,
		d.ModelTag,
		d.Reasoning,
		d.Priority,
		d.EffectivenessPrediction,
		d.TriggerCount,
		formatTime(d.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting routing decision: %w", err)
	}
	return nil
}

func (r *SQLiteDecisionRepo) GetByID(ctx context.Context, id string) (*domain.RoutingDecision, error) {
	query := `SELECT id, user_id, session_id, model_tag, reasoning, priority, effectiveness_prediction, trigger_count, created_at
		FROM ai_routing_decisions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanDecision(row.Scan)
}

func (r *SQLiteDecisionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.RoutingDecision, error) {
	query := `SELECT id, user_id, session_id, model_tag, reasoning, priority, effectiveness_prediction, trigger_count, created_at
		FROM ai_routing_decisions
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing routing decisions: %w", err)
	}
	defer rows.Close()

	var decisions []*domain.RoutingDecision
	for rows.Next() {
		d, err := scanDecision(rows.Scan)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating routing decisions: %w", err)
	}
	return decisions, nil
}

// scanDecision scans one decision row via the provided Scan function.
func scanDecision(scan func(dest ...any) error) (*domain.RoutingDecision, error) {
	var d domain.RoutingDecision
	var createdAt string
	err := scan(
		&d.ID, &d.UserID, &d.SessionID, &d.ModelTag, &d.Reasoning,
		&d.Priority, &d.EffectivenessPrediction, &d.TriggerCount, &createdAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("routing decision: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning routing decision: %w", err)
	}
	d.CreatedAt = parseTime(createdAt)
	return &d, nil
}
