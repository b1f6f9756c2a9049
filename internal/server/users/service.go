package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alinaagnistova/TestTask/internal/common"
	"github.com/alinaagnistova/TestTask/internal/cryptox"
	"github.com/alinaagnistova/TestTask/internal/server/accounts"
	"github.com/alinaagnistova/TestTask/internal/server/auth"
	"github.com/alinaagnistova/TestTask/internal/server/config"
	"github.com/alinaagnistova/TestTask/internal/server/models"
)

// TxRunner runs fn inside a single storage transaction, handing it
// transactional views of both repositories. Signup goes through it so a
// user row never exists without its bank account.
type TxRunner interface {
	InTx(ctx context.Context, fn func(u Repository, a accounts.Repository) error) error
}

type Service struct {
	repo          Repository
	tx            TxRunner
	hasher        *cryptox.Hasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, tx TxRunner, hasher *cryptox.Hasher, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		tx:            tx,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register creates the user and its zero-balance account atomically and
// issues a token for the new login. A duplicate login surfaces as
// common.ErrorConflict; any other storage failure is wrapped.
func (s *Service) Register(ctx context.Context, login, password string) (string, error) {

	salt := cryptox.GenerateSalt()

	user := &models.User{
		Login:        login,
		PasswordHash: s.hasher.Hash(password, salt),
		Salt:         salt,
	}

	err := s.tx.InTx(ctx, func(u Repository, a accounts.Repository) error {
		if _, err := u.Create(ctx, user); err != nil {
			return err
		}
		return a.Create(ctx, user.Login)
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return "", common.ErrorConflict
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.issueToken(login)
}

// Login recomputes the stored hash from the supplied plaintext and issues a
// token on a match. Unknown logins and wrong passwords are indistinguishable
// to the caller: both are common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, login, password string) (string, error) {

	user, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("error fetching user: %w", err)
	}

	if !s.hasher.Verify(password, user.Salt, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	return s.issueToken(login)
}

func (s *Service) issueToken(login string) (string, error) {
	token, err := auth.GenerateToken(login, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
