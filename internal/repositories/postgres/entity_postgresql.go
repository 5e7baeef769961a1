package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cosmiclearn/learning-service/internal/repositories"
)

// EntityPostgreSQL stores one record kind in its own table.
type EntityPostgreSQL[T any] struct {
	db   *gorm.DB
	kind string
}

func NewEntityPostgreSQL[T any](db *gorm.DB, kind string) *EntityPostgreSQL[T] {
	return &EntityPostgreSQL[T]{db: db, kind: kind}
}

func (r *EntityPostgreSQL[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, translateError(err, "get "+r.kind)
	}
	return &row, nil
}

func (r *EntityPostgreSQL[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return translateError(err, "create "+r.kind)
	}
	return nil
}

func (r *EntityPostgreSQL[T]) List(ctx context.Context) ([]*T, error) {
	rows := make([]*T, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, translateError(err, "list "+r.kind)
	}
	return rows, nil
}

// translateError maps gorm errors onto the repository sentinels. The DB is
// opened with TranslateError so unique violations arrive as ErrDuplicatedKey.
func translateError(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("failed to %s: %w", op, repositories.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("failed to %s: %w", op, repositories.ErrDuplicate)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
