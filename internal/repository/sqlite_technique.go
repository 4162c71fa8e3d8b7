package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/attune/internal/db"
	"github.com/alexanderramin/attune/internal/domain"
)

// SQLiteTechniqueRepo implements TechniqueRepo using a SQLite database.
type SQLiteTechniqueRepo struct {
	db db.DBTX
}

// NewSQLiteTechniqueRepo creates a new SQLiteTechniqueRepo.
func NewSQLiteTechniqueRepo(conn db.DBTX) *SQLiteTechniqueRepo {
	return &SQLiteTechniqueRepo{db: conn}
}

func (r *SQLiteTechniqueRepo) Create(ctx context.Context, o *domain.TechniqueOutcome) error {
	query := `INSERT INTO session_technique_tracking
		(id, user_id, session_id, technique_name, user_response_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.UserID,
		o.SessionID,
		o.TechniqueName,
		o.ResponseScore,
		formatTime(o.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting technique outcome: %w", err)
	}
	return nil
}

func (r *SQLiteTechniqueRepo) ListRecentScores(ctx context.Context, userID, technique string, since time.Time, limit int) ([]float64, error) {
	query := `SELECT user_response_score
		FROM session_technique_tracking
		WHERE user_id = ? AND technique_name = ? AND created_at >= ?
		ORDER BY created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, technique, formatTime(since), limit)
	if err != nil {
		return nil, fmt.Errorf("listing technique scores: %w", err)
	}
	defer rows.Close()

	var scores []float64
	for rows.Next() {
		var s float64
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning technique score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating technique scores: %w", err)
	}
	return scores, nil
}
