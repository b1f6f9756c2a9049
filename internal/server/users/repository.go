package users

import (
	"context"

	"github.com/alinaagnistova/TestTask/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByLogin(ctx context.Context, login string) (*models.User, error)
}
