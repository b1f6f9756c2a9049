package models

// Account is the single bank account a user owns, created atomically with
// its user row. Balance has no enforced lower bound.
type Account struct {
	ID         int64
	OwnerLogin string
	Balance    float64
}
