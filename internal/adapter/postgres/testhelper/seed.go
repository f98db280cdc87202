package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/simplehiit-backend/internal/entity"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique name and returns the stored row.
func SeedUser(t *testing.T, pool *pgxpool.Pool, selected bool) entity.User {
	t.Helper()

	u := entity.User{Name: "user-" + uniqueSuffix(), Selected: selected}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (name, selected) VALUES ($1, $2) RETURNING id`,
		u.Name, u.Selected,
	).Scan(&u.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}
	return u
}

// SeedSession inserts one session row for userID at ts and returns it.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID int64, ts time.Time, d time.Duration) entity.Session {
	t.Helper()

	s := entity.Session{UserID: userID, TimestampMs: ts.UnixMilli(), DurationMs: d.Milliseconds()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO session_records (user_id, timestamp_ms, duration_ms) VALUES ($1, $2, $3) RETURNING id`,
		s.UserID, s.TimestampMs, s.DurationMs,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert session_record: %v", err)
	}
	return s
}

// CountSessions returns how many session rows userID has.
func CountSessions(t *testing.T, pool *pgxpool.Pool, userID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM session_records WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountSessions: %v", err)
	}
	return n
}
