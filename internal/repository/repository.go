// Package repository holds the outcome policy every repository applies to its
// collaborator calls: success is wrapped, failures are classified into a
// domain.DomainError, and cancellation is handed back untouched.
package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/observability"
	"github.com/heartmarshall/simplehiit-backend/pkg/ctxutil"
)

// Op describes one wrapped repository operation.
type Op struct {
	// Tag names the operation in logs and metrics, e.g. "UsersRepository.insertUser".
	Tag string
	// Code is the DomainError any non-cancellation failure is classified to.
	Code domain.DomainError
	// Message is the log message for a failure.
	Message string
}

// IsCancellation reports whether err carries a cancellation signal.
// A deadline counts as cancellation: the caller stopped waiting either way.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Run calls fn and applies the outcome policy.
// A nil error yields Success. A cancellation is returned as the second value,
// unchanged and never wrapped. Any other error is logged, counted, and
// returned as Failure(op.Code, err).
func Run[T any](ctx context.Context, log *slog.Logger, op Op, fn func(ctx context.Context) (T, error)) (domain.Output[T], error) {
	v, err := fn(ctx)
	if err == nil {
		return domain.Success(v), nil
	}
	if IsCancellation(err) {
		Cancelled(ctx, log, op.Tag)
		return domain.Output[T]{}, err
	}
	return Fail[T](ctx, log, op, err), nil
}

// Fail logs err under op and returns it as Failure(op.Code, err).
// Callers must have ruled out cancellation.
func Fail[T any](ctx context.Context, log *slog.Logger, op Op, err error) domain.Output[T] {
	attrs := append(baseAttrs(ctx, op.Tag), slog.String("code", op.Code.String()), slog.String("error", err.Error()))
	log.LogAttrs(ctx, slog.LevelError, op.Message, attrs...)
	observability.RecordFailure(op.Tag, op.Code)
	return domain.Failure[T](op.Code, err)
}

// Reject logs op.Message without an error attribute and returns Failure(op.Code, cause).
// It is used when the failure is decided by the repository itself rather than thrown by a collaborator.
func Reject[T any](ctx context.Context, log *slog.Logger, op Op, cause error) domain.Output[T] {
	attrs := append(baseAttrs(ctx, op.Tag), slog.String("code", op.Code.String()))
	log.LogAttrs(ctx, slog.LevelError, op.Message, attrs...)
	observability.RecordFailure(op.Tag, op.Code)
	return domain.Failure[T](op.Code, cause)
}

// Cancelled records a cancellation at debug level. It never logs at error level.
func Cancelled(ctx context.Context, log *slog.Logger, tag string) {
	log.LogAttrs(ctx, slog.LevelDebug, "cancelled", baseAttrs(ctx, tag)...)
	observability.RecordCancellation(tag)
}

func baseAttrs(ctx context.Context, tag string) []slog.Attr {
	attrs := []slog.Attr{slog.String("tag", tag)}
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("run_id", id.String()))
	}
	return attrs
}
