package repositories

import (
	"context"

	"github.com/cosmiclearn/learning-service/internal/models"
)

// UserRepository stores accounts. Create assigns the id and creation time
// and fails with ErrDuplicate when the username is taken.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
}
