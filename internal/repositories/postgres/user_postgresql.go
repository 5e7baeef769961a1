package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
)

type UserPostgreSQL struct {
	*EntityPostgreSQL[models.User]
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &UserPostgreSQL{EntityPostgreSQL: NewEntityPostgreSQL[models.User](db, "user")}
}

// GetByUsername relies on the unique index on users.username.
func (r *UserPostgreSQL) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		return nil, translateError(err, "get user by username")
	}
	return &user, nil
}
