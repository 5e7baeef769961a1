package repositories

import (
	"context"
	"errors"

	"github.com/cosmiclearn/learning-service/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// EntityRepository is the read/create surface shared by every record kind.
// Records are never updated or deleted.
type EntityRepository[T any] interface {
	GetByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, record *T) error
	List(ctx context.Context) ([]*T, error)
}

// Repository aggregates the per-entity repositories.
type Repository interface {
	User() UserRepository

	Subject() EntityRepository[models.Subject]
	Lecture() EntityRepository[models.Lecture]
	Assignment() EntityRepository[models.Assignment]
	Submission() EntityRepository[models.Submission]
	Document() EntityRepository[models.Document]
	StudentProgress() EntityRepository[models.StudentProgress]

	AIContent() EntityRepository[models.AIContent]
	ChatMessage() EntityRepository[models.ChatMessage]

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager interface for managing repository lifecycle
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
}
