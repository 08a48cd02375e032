// Package db wires the Postgres connection, schema migrations and the
// per-domain repositories behind a single manager.
package db

import (
	"context"

	"github.com/dbellanger/lexico/internal/server/users"
	"github.com/dbellanger/lexico/internal/server/words"
)

type RepositoryManager interface {
	Users() users.Repository
	Words() words.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
