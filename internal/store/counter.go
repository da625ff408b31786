package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type sessionRepo struct {
	db *sql.DB
}

// GetOrIncrement advances the per-(user, course) session counter at most
// once per calendar day. The conditional upsert runs as a single
// statement so concurrent calls for the same pair cannot double-
// increment: ent has no conditional-upsert primitive, hence raw SQL,
// following the same pattern as the global event sequence.
func (r *sessionRepo) GetOrIncrement(ctx context.Context, userID, courseID uuid.UUID, today string) (CounterResult, error) {
	const upsert = `
		INSERT INTO session_counters (user_id, course_id, current_session, last_session_date)
		VALUES (?, ?, 1, ?)
		ON CONFLICT (user_id, course_id) DO UPDATE SET
			current_session = session_counters.current_session + 1,
			last_session_date = excluded.last_session_date
		WHERE session_counters.last_session_date <> excluded.last_session_date
		RETURNING current_session`

	var current int
	err := r.db.QueryRowContext(ctx, upsert, userID.String(), courseID.String(), today).Scan(&current)
	if err == nil {
		// A row came back: either the first session ever or a new day.
		return CounterResult{CurrentSession: current, IsNewSession: true}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return CounterResult{}, fmt.Errorf("increment session counter: %w", err)
	}

	// Same calendar day: the conditional update matched nothing, so read
	// the standing value.
	const read = `
		SELECT current_session FROM session_counters
		WHERE user_id = ? AND course_id = ?`
	err = r.db.QueryRowContext(ctx, read, userID.String(), courseID.String()).Scan(&current)
	if err != nil {
		return CounterResult{}, fmt.Errorf("read session counter: %w", err)
	}
	return CounterResult{CurrentSession: current, IsNewSession: false}, nil
}
