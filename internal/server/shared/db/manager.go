package db

import (
	"context"

	"github.com/alinaagnistova/TestTask/internal/server/accounts"
	"github.com/alinaagnistova/TestTask/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Close() error
	Users() users.Repository
	Accounts() accounts.Repository
	// InTx satisfies users.TxRunner: it runs fn with transactional views of
	// both repositories, committing only if fn succeeds.
	InTx(ctx context.Context, fn func(u users.Repository, a accounts.Repository) error) error
}
