package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db *gorm.DB

	user            repositories.UserRepository
	subject         repositories.EntityRepository[models.Subject]
	lecture         repositories.EntityRepository[models.Lecture]
	assignment      repositories.EntityRepository[models.Assignment]
	submission      repositories.EntityRepository[models.Submission]
	document        repositories.EntityRepository[models.Document]
	studentProgress repositories.EntityRepository[models.StudentProgress]
	aiContent       repositories.EntityRepository[models.AIContent]
	chatMessage     repositories.EntityRepository[models.ChatMessage]
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB *gorm.DB
}

// NewPostgreSQLRepository creates a new repository with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	db := config.DB
	return &PostgreSQLRepository{
		db:              db,
		user:            NewUserPostgreSQL(db),
		subject:         NewEntityPostgreSQL[models.Subject](db, "subject"),
		lecture:         NewEntityPostgreSQL[models.Lecture](db, "lecture"),
		assignment:      NewEntityPostgreSQL[models.Assignment](db, "assignment"),
		submission:      NewEntityPostgreSQL[models.Submission](db, "submission"),
		document:        NewEntityPostgreSQL[models.Document](db, "document"),
		studentProgress: NewEntityPostgreSQL[models.StudentProgress](db, "student progress"),
		aiContent:       NewEntityPostgreSQL[models.AIContent](db, "ai content"),
		chatMessage:     NewEntityPostgreSQL[models.ChatMessage](db, "chat message"),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository { return r.user }

func (r *PostgreSQLRepository) Subject() repositories.EntityRepository[models.Subject] {
	return r.subject
}

func (r *PostgreSQLRepository) Lecture() repositories.EntityRepository[models.Lecture] {
	return r.lecture
}

func (r *PostgreSQLRepository) Assignment() repositories.EntityRepository[models.Assignment] {
	return r.assignment
}

func (r *PostgreSQLRepository) Submission() repositories.EntityRepository[models.Submission] {
	return r.submission
}

func (r *PostgreSQLRepository) Document() repositories.EntityRepository[models.Document] {
	return r.document
}

func (r *PostgreSQLRepository) StudentProgress() repositories.EntityRepository[models.StudentProgress] {
	return r.studentProgress
}

func (r *PostgreSQLRepository) AIContent() repositories.EntityRepository[models.AIContent] {
	return r.aiContent
}

func (r *PostgreSQLRepository) ChatMessage() repositories.EntityRepository[models.ChatMessage] {
	return r.chatMessage
}

// Ping checks the health of the database connection
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close closes the database connection
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a new repository manager
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{
		config: config,
	}
}

// Initialize verifies the connection and builds the repository
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}
