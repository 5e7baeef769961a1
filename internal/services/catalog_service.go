package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
)

type catalogService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewCatalogService(repo repositories.Repository, logger *slog.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	return list(ctx, s.repo.Subject(), "subjects")
}

func (s *catalogService) ListLectures(ctx context.Context) ([]*models.Lecture, error) {
	return list(ctx, s.repo.Lecture(), "lectures")
}

func (s *catalogService) ListAssignments(ctx context.Context) ([]*models.Assignment, error) {
	return list(ctx, s.repo.Assignment(), "assignments")
}

func (s *catalogService) ListSubmissions(ctx context.Context) ([]*models.Submission, error) {
	return list(ctx, s.repo.Submission(), "submissions")
}

func (s *catalogService) ListDocuments(ctx context.Context) ([]*models.Document, error) {
	return list(ctx, s.repo.Document(), "documents")
}

func (s *catalogService) ListStudentProgress(ctx context.Context) ([]*models.StudentProgress, error) {
	return list(ctx, s.repo.StudentProgress(), "student progress")
}

func (s *catalogService) ListAIContent(ctx context.Context) ([]*models.AIContent, error) {
	return list(ctx, s.repo.AIContent(), "ai content")
}

func (s *catalogService) ListChatMessages(ctx context.Context) ([]*models.ChatMessage, error) {
	return list(ctx, s.repo.ChatMessage(), "chat messages")
}

// list never returns a nil slice so empty collections encode as [].
func list[T any](ctx context.Context, repo repositories.EntityRepository[T], kind string) ([]*T, error) {
	rows, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	if rows == nil {
		rows = []*T{}
	}
	return rows, nil
}
