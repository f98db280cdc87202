// Package users implements the users repository: CRUD over user rows plus
// live user lists, every result wrapped in a domain.Output.
package users

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
	"github.com/heartmarshall/simplehiit-backend/internal/mapper"
	"github.com/heartmarshall/simplehiit-backend/internal/repository"
	"github.com/heartmarshall/simplehiit-backend/pkg/stream"
)

// userStore is the relational collaborator the repository delegates to.
type userStore interface {
	Insert(ctx context.Context, u entity.User) (int64, error)
	Update(ctx context.Context, u entity.User) (int64, error)
	Delete(ctx context.Context, u entity.User) (int64, error)
	DeleteAll(ctx context.Context) error
	List(ctx context.Context) ([]entity.User, error)
	Watch(ctx context.Context) <-chan stream.Item[[]entity.User]
	WatchSelected(ctx context.Context) <-chan stream.Item[[]entity.User]
}

var (
	errFailedUpdatingUser = errors.New("failed updating user")
	errFailedDeletingUser = errors.New("failed deleting user")
)

var (
	opInsertUser = repository.Op{
		Tag:     "UsersRepository.insertUser",
		Code:    domain.ErrDatabaseInsertFailed,
		Message: "failed inserting user",
	}
	opUpdateUser = repository.Op{
		Tag:     "UsersRepository.updateUser",
		Code:    domain.ErrDatabaseUpdateFailed,
		Message: "failed updating user",
	}
	opDeleteUser = repository.Op{
		Tag:     "UsersRepository.deleteUser",
		Code:    domain.ErrDatabaseDeleteFailed,
		Message: "failed deleting user",
	}
	opGetUsers = repository.Op{
		Tag:     "UsersRepository.getUsers",
		Code:    domain.ErrDatabaseFetchFailed,
		Message: "failed getting users",
	}
	opGetSelectedUsers = repository.Op{
		Tag:     "UsersRepository.getSelectedUsers",
		Code:    domain.ErrDatabaseFetchFailed,
		Message: "failed getting selected users",
	}
	opGetUsersList = repository.Op{
		Tag:     "UsersRepository.getUsersList",
		Code:    domain.ErrDatabaseFetchFailed,
		Message: "failed getting users list",
	}
)

// Repo is the users repository. It holds no state besides its collaborators.
type Repo struct {
	log   *slog.Logger
	store userStore
}

// New creates a users repository on top of store.
func New(logger *slog.Logger, store userStore) *Repo {
	return &Repo{
		log:   logger.With("repository", "users"),
		store: store,
	}
}

// InsertUser stores u and returns the id storage assigned to it.
func (r *Repo) InsertUser(ctx context.Context, u domain.User) (domain.Output[int64], error) {
	return repository.Run(ctx, r.log, opInsertUser, func(ctx context.Context) (int64, error) {
		return r.store.Insert(ctx, mapper.UserToEntity(u))
	})
}

// UpdateUser rewrites the stored row of u. Anything but exactly one affected
// row is a DATABASE_UPDATE_FAILED failure, thrown or not.
func (r *Repo) UpdateUser(ctx context.Context, u domain.User) (domain.Output[int64], error) {
	out, err := repository.Run(ctx, r.log, opUpdateUser, func(ctx context.Context) (int64, error) {
		return r.store.Update(ctx, mapper.UserToEntity(u))
	})
	if err != nil {
		return out, err
	}
	return r.requireSingleRow(ctx, opUpdateUser, out, errFailedUpdatingUser), nil
}

// DeleteUser removes u (and, through storage, its session rows). Anything but
// exactly one affected row is a DATABASE_DELETE_FAILED failure.
func (r *Repo) DeleteUser(ctx context.Context, u domain.User) (domain.Output[int64], error) {
	out, err := repository.Run(ctx, r.log, opDeleteUser, func(ctx context.Context) (int64, error) {
		return r.store.Delete(ctx, mapper.UserToEntity(u))
	})
	if err != nil {
		return out, err
	}
	return r.requireSingleRow(ctx, opDeleteUser, out, errFailedDeletingUser), nil
}

// DeleteAllUsers wipes every user. Unlike every other operation here its
// failures are returned raw instead of being wrapped in an Output.
func (r *Repo) DeleteAllUsers(ctx context.Context) error {
	return r.store.DeleteAll(ctx)
}

// GetUsers mirrors the stored user list. See observe for the stream contract.
func (r *Repo) GetUsers(ctx context.Context) <-chan domain.Output[[]domain.User] {
	return r.observe(ctx, opGetUsers, r.store.Watch(ctx))
}

// GetSelectedUsers mirrors the list of users selected for the next session.
func (r *Repo) GetSelectedUsers(ctx context.Context) <-chan domain.Output[[]domain.User] {
	return r.observe(ctx, opGetSelectedUsers, r.store.WatchSelected(ctx))
}

// GetUsersList reads the user list once.
func (r *Repo) GetUsersList(ctx context.Context) (domain.Output[[]domain.User], error) {
	return repository.Run(ctx, r.log, opGetUsersList, func(ctx context.Context) ([]domain.User, error) {
		rows, err := r.store.List(ctx)
		if err != nil {
			return nil, err
		}
		return mapper.UsersToDomain(rows), nil
	})
}

// requireSingleRow turns a successful write that touched anything other than one row into a failure.
func (r *Repo) requireSingleRow(ctx context.Context, op repository.Op, out domain.Output[int64], cause error) domain.Output[int64] {
	n, ok := out.Result()
	if !ok || n == 1 {
		return out
	}
	return repository.Reject[int64](ctx, r.log, op, cause)
}

// observe maps every upstream snapshot to a Success and every upstream error
// to one DATABASE_FETCH_FAILED Failure. The stream ends when upstream closes or
// ctx is done; an upstream cancellation ends it without an emission.
func (r *Repo) observe(ctx context.Context, op repository.Op, upstream <-chan stream.Item[[]entity.User]) <-chan domain.Output[[]domain.User] {
	out := make(chan domain.Output[[]domain.User])

	go func() {
		defer close(out)
		for {
			var item stream.Item[[]entity.User]
			var ok bool
			select {
			case <-ctx.Done():
				return
			case item, ok = <-upstream:
				if !ok {
					return
				}
			}

			var o domain.Output[[]domain.User]
			switch {
			case item.Err == nil:
				o = domain.Success(mapper.UsersToDomain(item.Value))
			case repository.IsCancellation(item.Err):
				repository.Cancelled(ctx, r.log, op.Tag)
				return
			default:
				o = repository.Fail[[]domain.User](ctx, r.log, op, item.Err)
			}

			if !stream.Send(ctx, out, o) {
				return
			}
		}
	}()

	return out
}
