package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/attune/internal/db"
	"github.com/alexanderramin/attune/internal/domain"
)

// SQLiteMoodRepo implements MoodRepo using a SQLite database.
type SQLiteMoodRepo struct {
	db db.DBTX
}

// NewSQLiteMoodRepo creates a new SQLiteMoodRepo.
func NewSQLiteMoodRepo(conn db.DBTX) *SQLiteMoodRepo {
	return &SQLiteMoodRepo{db: conn}
}

func (r *SQLiteMoodRepo) Create(ctx context.Context, e *domain.MoodEntry) error {
	query := `INSERT INTO mood_entries (id, user_id, overall, created_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.UserID,
		e.Overall,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting mood entry: %w", err)
	}
	return nil
}

func (r *SQLiteMoodRepo) ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]*domain.MoodEntry, error) {
	query := `SELECT id, user_id, overall, created_at
		FROM mood_entries
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, formatTime(since), limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent mood entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.MoodEntry
	for rows.Next() {
		var e domain.MoodEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Overall, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning mood entry: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mood entries: %w", err)
	}
	return entries, nil
}
