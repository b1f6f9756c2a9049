package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alinaagnistova/TestTask/internal/common"
	"github.com/alinaagnistova/TestTask/internal/dbx"
	"github.com/alinaagnistova/TestTask/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, ownerLogin string) error {

	query :=
		`INSERT INTO bank_account (owner_login, balance)
		 VALUES ($1, 0)
		 `

	if _, err := r.db.ExecContext(ctx, query, ownerLogin); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Balance(ctx context.Context, ownerLogin string) (float64, error) {
	query :=
		`SELECT id, owner_login, balance FROM bank_account
		 WHERE owner_login = $1
		 `

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, ownerLogin).Scan(&account.ID, &account.OwnerLogin, &account.Balance)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return account.Balance, nil
}

// Increment relies on the database making `balance = balance + $1` atomic;
// the server adds no locking of its own around concurrent transfers.
func (r *PostgresRepository) Increment(ctx context.Context, ownerLogin string, amount float64) (int64, error) {
	query :=
		`UPDATE bank_account SET balance = balance + $1
		 WHERE owner_login = $2
		 `

	res, err := r.db.ExecContext(ctx, query, amount, ownerLogin)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return rows, nil
}
