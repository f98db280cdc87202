// Package session implements the session_records table DAO using PostgreSQL.
package session

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/simplehiit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
)

const sessionsTable = "session_records"

var sessionColumns = []string{"id", "user_id", "timestamp_ms", "duration_ms"}

// Repo provides session record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// InsertMany stores rows with a single multi-row INSERT and returns the
// number of rows written. Row ids are assigned by the sequence.
func (r *Repo) InsertMany(ctx context.Context, rows []entity.Session) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	insert := postgres.Builder().Insert(sessionsTable).Columns("user_id", "timestamp_ms", "duration_ms")
	for _, row := range rows {
		insert = insert.Values(row.UserID, row.TimestampMs, row.DurationMs)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert session records: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "session_record", rows[0].UserID)
	}
	return tag.RowsAffected(), nil
}

// ListByUser returns the rows of userID, most recent first.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]entity.Session, error) {
	query, args, err := postgres.Builder().
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp_ms DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list session records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "session_record", userID)
	}

	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.Session])
	if err != nil {
		return nil, postgres.MapError(err, "session_record", userID)
	}
	if sessions == nil {
		sessions = []entity.Session{}
	}
	return sessions, nil
}

// DeleteByUser removes every row of userID and returns how many went.
func (r *Repo) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(sessionsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete session records: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "session_record", userID)
	}
	return tag.RowsAffected(), nil
}
