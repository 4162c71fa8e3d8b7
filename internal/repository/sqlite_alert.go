package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/attune/internal/db"
	"github.com/alexanderramin/attune/internal/domain"
)

// SQLiteCrisisAlertRepo implements CrisisAlertRepo using a SQLite database.
type SQLiteCrisisAlertRepo struct {
	db db.DBTX
}

// NewSQLiteCrisisAlertRepo creates a new SQLiteCrisisAlertRepo.
func NewSQLiteCrisisAlertRepo(conn db.DBTX) *SQLiteCrisisAlertRepo {
	return &SQLiteCrisisAlertRepo{db: conn}
}

func (r *SQLiteCrisisAlertRepo) Create(ctx context.Context, a *domain.CrisisAlert) error {
	query := `INSERT INTO crisis_alerts (id, user_id, source, note, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Source,
		a.Note,
		formatTime(a.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting crisis alert: %w", err)
	}
	return nil
}

func (r *SQLiteCrisisAlertRepo) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM crisis_alerts WHERE user_id = ? AND created_at >= ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, userID, formatTime(since)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting crisis alerts: %w", err)
	}
	return count, nil
}
