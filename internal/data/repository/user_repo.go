package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"cinema-users/internal/data/entity"
)

// ErrInvalidID is returned when an id cannot be converted to the store's
// native identifier type.
var ErrInvalidID = errors.New("invalid user id")

type UserRepository interface {
	// Create stores user and assigns user.ID.
	Create(ctx context.Context, user *entity.User) error
	// FindByEmail returns nil, nil when no user has that exact email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindAll returns at most limit users after skipping skip, without
	// password hashes.
	FindAll(ctx context.Context, skip, limit int64) ([]*entity.User, error)
	// FindProfile returns zero or one profiles for userID with the tickets
	// showing strictly after now.
	FindProfile(ctx context.Context, userID string, now time.Time) ([]*entity.UserProfile, error)
}

// reservedUserFields are stored in dedicated fields and never copied from
// User.Attributes, whatever their casing. Keys are lower case.
var reservedUserFields = map[string]struct{}{
	"_id":        {},
	"id":         {},
	"name":       {},
	"email":      {},
	"password":   {},
	"phone":      {},
	"createdat":  {},
	"tickets":    {},
	versionField: {},
}

func extraAttributes(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		if _, reserved := reservedUserFields[strings.ToLower(k)]; reserved {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
