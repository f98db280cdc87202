package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/simplehiit-backend/pkg/stream"
)

// UsersChannel is the NOTIFY channel fired by the users table triggers.
const UsersChannel = "users_changed"

// Watch streams load's result: once on subscribe, then again after every
// NOTIFY on channel. A failed load is emitted as an error item and the
// watch goes on. Losing the listening connection emits one error item
// and ends the stream. The stream also ends when ctx is done.
//
// load runs on the listening connection: queries it makes through
// QuerierFromCtx reuse it, so a watch holds exactly one pooled connection.
func Watch[T any](ctx context.Context, pool *pgxpool.Pool, channel string, load func(ctx context.Context) (T, error)) <-chan stream.Item[T] {
	out := make(chan stream.Item[T])

	go func() {
		defer close(out)

		conn, err := pool.Acquire(ctx)
		if err != nil {
			stream.Send(ctx, out, stream.Failed[T](fmt.Errorf("acquire listen connection: %w", err)))
			return
		}
		defer release(ctx, conn)

		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
			stream.Send(ctx, out, stream.Failed[T](fmt.Errorf("listen %s: %w", channel, err)))
			return
		}

		loadCtx := withConn(ctx, conn)
		for {
			v, err := load(loadCtx)
			item := stream.Of(v)
			if err != nil {
				item = stream.Failed[T](err)
			}
			if !stream.Send(ctx, out, item) {
				return
			}

			if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
				if ctx.Err() == nil {
					stream.Send(ctx, out, stream.Failed[T](fmt.Errorf("wait for %s: %w", channel, err)))
				}
				return
			}
		}
	}()

	return out
}

// release drops the LISTEN registrations before handing the connection back.
// A connection that cannot be cleaned is destroyed instead.
func release(ctx context.Context, conn *pgxpool.Conn) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if _, err := conn.Exec(cleanupCtx, "UNLISTEN *"); err != nil {
		_ = conn.Hijack().Close(cleanupCtx)
		return
	}
	conn.Release()
}
