package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/alinaagnistova/TestTask/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Transfer credits amount to the recipient's account. Faithful to the
// observed contract: the sender, identified only by their token, is never
// debited and no sufficient-funds check runs (known semantic gap, kept on
// purpose). A recipient without an account yields common.ErrorNotFound.
func (s *Service) Transfer(ctx context.Context, recipient string, amount float64) error {
	rows, err := s.repo.Increment(ctx, recipient, amount)
	if err != nil {
		return fmt.Errorf("error updating balance: %w", err)
	}
	if rows == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Balance returns the owner's current balance.
func (s *Service) Balance(ctx context.Context, ownerLogin string) (float64, error) {
	balance, err := s.repo.Balance(ctx, ownerLogin)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("error reading balance: %w", err)
	}
	return balance, nil
}
