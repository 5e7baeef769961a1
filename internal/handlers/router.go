package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cosmiclearn/learning-service/internal/services"
	"github.com/cosmiclearn/learning-service/internal/utils"
)

type HandlerManager struct {
	authHandler    *AuthHandler
	userHandler    *UserHandler
	catalogHandler *CatalogHandler
	aiHandler      *AIHandler
	healthHandler  *HealthHandler
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	base := NewBaseHandler(logger)

	return &HandlerManager{
		authHandler:    NewAuthHandler(serviceManager.Auth(), base),
		userHandler:    NewUserHandler(serviceManager.Auth(), base),
		catalogHandler: NewCatalogHandler(serviceManager.Catalog(), base),
		aiHandler:      NewAIHandler(serviceManager.AI(), serviceManager.QuizExport(), base),
		healthHandler:  NewHealthHandler(serviceManager, base),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", hm.authHandler.Login)
			auth.POST("/register", hm.authHandler.Register)
		}

		api.GET("/user/:id", hm.userHandler.GetUser)

		// Read-only collections
		api.GET("/subjects", hm.catalogHandler.ListSubjects)
		api.GET("/lectures", hm.catalogHandler.ListLectures)
		api.GET("/assignments", hm.catalogHandler.ListAssignments)
		api.GET("/submissions", hm.catalogHandler.ListSubmissions)
		api.GET("/documents", hm.catalogHandler.ListDocuments)
		api.GET("/student-progress", hm.catalogHandler.ListStudentProgress)
		api.GET("/ai-content", hm.catalogHandler.ListAIContent)
		api.GET("/chat-messages", hm.catalogHandler.ListChatMessages)

		ai := api.Group("/ai")
		{
			ai.POST("/calendar", hm.aiHandler.GenerateCalendar)
			ai.POST("/assistant", hm.aiHandler.Assistant)
			ai.POST("/mindmap", hm.aiHandler.GenerateMindMap)
			ai.POST("/summarize", hm.aiHandler.SummarizeLecture)
			ai.POST("/hint", hm.aiHandler.GenerateHint)
			ai.POST("/generate-quiz", hm.aiHandler.GenerateQuiz)
			ai.POST("/generate-quiz/export", hm.aiHandler.ExportQuiz)
			ai.POST("/plagiarism-check", hm.aiHandler.CheckPlagiarism)
			ai.POST("/suggestions", hm.aiHandler.GenerateSuggestions)
		}
	}

	router.GET("/health", hm.healthHandler.Health)
}
