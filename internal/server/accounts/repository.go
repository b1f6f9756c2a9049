package accounts

import "context"

type Repository interface {
	// Create opens a zero-balance account for the owner.
	Create(ctx context.Context, ownerLogin string) error
	// Balance returns the owner's current balance, or common.ErrorNotFound.
	Balance(ctx context.Context, ownerLogin string) (float64, error)
	// Increment adds amount to the owner's balance in a single UPDATE and
	// reports the number of matched rows (0 = no such account).
	Increment(ctx context.Context, ownerLogin string, amount float64) (int64, error)
}
