// Package sessions implements the session records repository.
package sessions

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
	"github.com/heartmarshall/simplehiit-backend/internal/mapper"
	"github.com/heartmarshall/simplehiit-backend/internal/repository"
)

// sessionStore is the relational collaborator holding one row per participant per session.
type sessionStore interface {
	InsertMany(ctx context.Context, rows []entity.Session) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Session, error)
	DeleteByUser(ctx context.Context, userID int64) (int64, error)
}

var errNoUserProvided = errors.New("No user provided when trying to insert session")

var (
	opInsertSessionRecord = repository.Op{
		Tag:     "SessionsRepository.insertSessionRecord",
		Code:    domain.ErrDatabaseInsertFailed,
		Message: "failed inserting session record",
	}
	opNoUserProvided = repository.Op{
		Tag:     "SessionsRepository.insertSessionRecord",
		Code:    domain.ErrNoUserProvided,
		Message: "no user provided",
	}
	opGetSessionRecordsForUser = repository.Op{
		Tag:     "SessionsRepository.getSessionRecordsForUser",
		Code:    domain.ErrDatabaseFetchFailed,
		Message: "failed getting session records",
	}
	opDeleteSessionRecordsForUser = repository.Op{
		Tag:     "SessionsRepository.deleteSessionRecordsForUser",
		Code:    domain.ErrDatabaseDeleteFailed,
		Message: "failed deleting session records",
	}
)

// Repo is the session records repository.
type Repo struct {
	log   *slog.Logger
	store sessionStore
}

// New creates a sessions repository on top of store.
func New(logger *slog.Logger, store sessionStore) *Repo {
	return &Repo{
		log:   logger.With("repository", "sessions"),
		store: store,
	}
}

// InsertSessionRecord stores one row per participant of record in a single
// store call and returns the row count the store reports.
// A record without participants fails with NO_USER_PROVIDED before reaching the store.
func (r *Repo) InsertSessionRecord(ctx context.Context, record domain.SessionRecord) (domain.Output[int64], error) {
	if !record.HasParticipants() {
		return repository.Reject[int64](ctx, r.log, opNoUserProvided, errNoUserProvided), nil
	}

	rows := mapper.SessionToEntities(record)
	return repository.Run(ctx, r.log, opInsertSessionRecord, func(ctx context.Context) (int64, error) {
		return r.store.InsertMany(ctx, rows)
	})
}

// GetSessionRecordsForUser returns the user's records, one per stored row.
func (r *Repo) GetSessionRecordsForUser(ctx context.Context, u domain.User) (domain.Output[[]domain.SessionRecord], error) {
	return repository.Run(ctx, r.log, opGetSessionRecordsForUser, func(ctx context.Context) ([]domain.SessionRecord, error) {
		rows, err := r.store.ListByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		return mapper.SessionsToDomain(rows), nil
	})
}

// DeleteSessionRecordsForUser removes every row of userID and returns how many
// went. Zero is a valid outcome: there was nothing to delete.
func (r *Repo) DeleteSessionRecordsForUser(ctx context.Context, userID int64) (domain.Output[int64], error) {
	return repository.Run(ctx, r.log, opDeleteSessionRecordsForUser, func(ctx context.Context) (int64, error) {
		return r.store.DeleteByUser(ctx, userID)
	})
}
