// Package user implements the users table DAO using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/simplehiit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
	"github.com/heartmarshall/simplehiit-backend/pkg/stream"
)

const (
	usersTable    = "users"
	sessionsTable = "session_records"
)

var userColumns = []string{"id", "name", "selected"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new user repository.
func New(pool *pgxpool.Pool, tx *postgres.TxManager) *Repo {
	return &Repo{pool: pool, tx: tx}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert stores u and returns its id. A zero ID lets the sequence assign one.
func (r *Repo) Insert(ctx context.Context, u entity.User) (int64, error) {
	insert := postgres.Builder().Insert(usersTable).Suffix("RETURNING id")
	if u.ID == 0 {
		insert = insert.Columns("name", "selected").Values(u.Name, u.Selected)
	} else {
		insert = insert.Columns(userColumns...).Values(u.ID, u.Name, u.Selected)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert user: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, postgres.MapError(err, "user", u.ID)
	}
	return id, nil
}

// Update rewrites name and selection of the row with u.ID and returns the number of rows touched.
func (r *Repo) Update(ctx context.Context, u entity.User) (int64, error) {
	update := postgres.Builder().Update(usersTable).
		Set("name", u.Name).
		Set("selected", u.Selected).
		Where(sq.Eq{"id": u.ID})

	return r.exec(ctx, update, u.ID)
}

// Delete removes the row with u.ID and returns the number of rows touched.
// Session rows of the user go with it through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, u entity.User) (int64, error) {
	return r.exec(ctx, postgres.Builder().Delete(usersTable).Where(sq.Eq{"id": u.ID}), u.ID)
}

// DeleteAll removes every session row and every user in one transaction.
func (r *Repo) DeleteAll(ctx context.Context) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)
		if _, err := q.Exec(ctx, "DELETE FROM "+sessionsTable); err != nil {
			return postgres.MapError(err, "session_record", 0)
		}
		if _, err := q.Exec(ctx, "DELETE FROM "+usersTable); err != nil {
			return postgres.MapError(err, "user", 0)
		}
		return nil
	})
}

func (r *Repo) exec(ctx context.Context, b sq.Sqlizer, id int64) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build user statement: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every user ordered by id.
func (r *Repo) List(ctx context.Context) ([]entity.User, error) {
	return r.list(ctx, nil)
}

// ListSelected returns the users selected for the next session, ordered by id.
func (r *Repo) ListSelected(ctx context.Context) ([]entity.User, error) {
	return r.list(ctx, sq.Eq{"selected": true})
}

// Watch streams the user list, re-read after every change to the users table.
func (r *Repo) Watch(ctx context.Context) <-chan stream.Item[[]entity.User] {
	return postgres.Watch(ctx, r.pool, postgres.UsersChannel, r.List)
}

// WatchSelected streams the selected users, re-read after every change to the users table.
func (r *Repo) WatchSelected(ctx context.Context) <-chan stream.Item[[]entity.User] {
	return postgres.Watch(ctx, r.pool, postgres.UsersChannel, r.ListSelected)
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]entity.User, error) {
	sel := postgres.Builder().Select(userColumns...).From(usersTable).OrderBy("id")
	if where != nil {
		sel = sel.Where(where)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entity.User])
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	if users == nil {
		users = []entity.User{}
	}
	return users, nil
}
