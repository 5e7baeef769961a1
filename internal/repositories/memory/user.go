package memory

import (
	"context"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
)

type userRepository struct {
	*table[models.User]
}

func (repo *userRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	if usr := repo.findLocked(username); usr != nil {
		cp := *usr
		return &cp, nil
	}
	return nil, repositories.ErrNotFound
}

// Create checks the username and inserts under one write lock, so at most
// one of several concurrent registrations for a name can win.
func (repo *userRepository) Create(_ context.Context, usr *models.User) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	if repo.findLocked(usr.Username) != nil {
		return repositories.ErrDuplicate
	}
	repo.insertLocked(usr)
	return nil
}

func (repo *userRepository) findLocked(username string) *models.User {
	for _, usr := range repo.rows {
		if usr.Username == username {
			return usr
		}
	}
	return nil
}
