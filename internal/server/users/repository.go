package users

import (
	"context"
)

// Repository is the credential store. Implementations must enforce username
// uniqueness at the storage level; Create returns common.ErrorConflict when a
// concurrent insert wins the race.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
