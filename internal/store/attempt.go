package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AttemptKind distinguishes module quizzes from the final quiz.
type AttemptKind string

const (
	AttemptModule AttemptKind = "module"
	AttemptFinal  AttemptKind = "final"
)

// Attempt is one finished quiz.
type Attempt struct {
	ID         string
	Kind       AttemptKind
	ModuleID   string // empty for the final quiz
	Score      int
	Total      int
	Percentage int
	Passed     bool
	CreatedAt  time.Time
}

// AttemptRepo is the append-only quiz attempt log.
type AttemptRepo interface {
	// Append stores a. ID and CreatedAt are filled in when empty.
	Append(ctx context.Context, a *Attempt) error

	// Recent returns up to limit attempts, newest first (0 = all).
	Recent(ctx context.Context, limit int) ([]Attempt, error)

	// Clear deletes every attempt.
	Clear(ctx context.Context) error
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	passed := 0
	if a.Passed {
		passed = 1
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO attempts (id, kind, module_id, score, total, percentage, passed, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, string(a.Kind), a.ModuleID, a.Score, a.Total, a.Percentage, passed,
		a.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	query := `
	SELECT id, kind, module_id, score, total, percentage, passed, created_at
	FROM attempts ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var kind string
		var passed int
		var created int64
		if err := rows.Scan(&a.ID, &kind, &a.ModuleID, &a.Score, &a.Total,
			&a.Percentage, &passed, &created); err != nil {
			return nil, fmt.Errorf("scan attempt row: %w", err)
		}
		a.Kind = AttemptKind(kind)
		a.Passed = passed != 0
		a.CreatedAt = time.Unix(0, created)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return out, nil
}

func (r *attemptRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("clear attempts: %w", err)
	}
	return nil
}
