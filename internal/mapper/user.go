// Package mapper converts between storage entities and domain models.
// Every function is pure: no I/O, no clock, no shared state.
package mapper

import (
	"github.com/heartmarshall/simplehiit-backend/internal/domain"
	"github.com/heartmarshall/simplehiit-backend/internal/entity"
)

// UserToEntity converts a domain.User into its storage row.
func UserToEntity(u domain.User) entity.User {
	return entity.User{
		ID:       u.ID,
		Name:     u.Name,
		Selected: u.Selected,
	}
}

// UserToDomain converts a storage row into a domain.User.
func UserToDomain(e entity.User) domain.User {
	return domain.User{
		ID:       e.ID,
		Name:     e.Name,
		Selected: e.Selected,
	}
}

// UsersToDomain converts a list of rows, preserving order. A nil input yields an empty list.
func UsersToDomain(rows []entity.User) []domain.User {
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = UserToDomain(row)
	}
	return users
}
