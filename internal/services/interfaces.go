package services

import (
	"context"

	"github.com/cosmiclearn/learning-service/internal/models"
)

type AuthService interface {
	// Login returns ErrInvalidCredentials for an unknown user and a wrong
	// password alike.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

type CatalogService interface {
	ListSubjects(ctx context.Context) ([]*models.Subject, error)
	ListLectures(ctx context.Context) ([]*models.Lecture, error)
	ListAssignments(ctx context.Context) ([]*models.Assignment, error)
	ListSubmissions(ctx context.Context) ([]*models.Submission, error)
	ListDocuments(ctx context.Context) ([]*models.Document, error)
	ListStudentProgress(ctx context.Context) ([]*models.StudentProgress, error)
	ListAIContent(ctx context.Context) ([]*models.AIContent, error)
	ListChatMessages(ctx context.Context) ([]*models.ChatMessage, error)
}

// AIService fronts the completion service. JSON features return whatever
// object the model produced, or an empty payload when the reply is unusable.
type AIService interface {
	GenerateCalendar(ctx context.Context, studentID uint) (models.AIPayload, error)
	// AnswerQuestion only fails when ctx is already done.
	AnswerQuestion(ctx context.Context, question string) (*models.AssistantResponse, error)
	GenerateMindMap(ctx context.Context, lectureID uint) (models.AIPayload, error)
	SummarizeLecture(ctx context.Context, lectureID uint) (models.AIPayload, error)
	GenerateHint(ctx context.Context, assignmentID, questionID uint) (models.AIPayload, error)
	GenerateQuiz(ctx context.Context, documentIDs []uint) (models.AIPayload, error)
	CheckPlagiarism(ctx context.Context, submissionID uint) (models.AIPayload, error)
	GenerateSuggestions(ctx context.Context, studentIDs []uint) (models.AIPayload, error)
}

type QuizExportService interface {
	// ExportQuiz generates a quiz and renders it as an xlsx workbook.
	ExportQuiz(ctx context.Context, documentIDs []uint) ([]byte, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Auth() AuthService
	Catalog() CatalogService
	AI() AIService
	QuizExport() QuizExportService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
