package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/services"
)

const (
	assistantBadRequest = "Invalid request. Please provide a question string."
	assistantRouteError = "I apologize, but I'm having trouble processing your request right now. Please try again in a few moments."

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// AIHandler exposes the AI features. JSON features answer with the
// generated object as-is.
type AIHandler struct {
	BaseHandler
	aiService     services.AIService
	exportService services.QuizExportService
}

func NewAIHandler(aiService services.AIService, exportService services.QuizExportService, base BaseHandler) *AIHandler {
	return &AIHandler{BaseHandler: base, aiService: aiService, exportService: exportService}
}

// GenerateCalendar
// @Summary Personalized learning calendar
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.CalendarRequest true "Student"
// @Success 200 {object} models.Calendar
// @Failure 500 {object} ErrorResponse
// @Router /ai/calendar [post]
func (h *AIHandler) GenerateCalendar(c *gin.Context) {
	var req models.CalendarRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payload, err := h.aiService.GenerateCalendar(c.Request.Context(), req.StudentID)
	h.respondPayload(c, payload, err, "Failed to generate calendar")
}

// Assistant answers a free-text question. Only a missing question is an
// error; every other failure still answers 200 with an apology.
// @Summary Ask the assistant
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.AssistantRequest true "Question"
// @Success 200 {object} models.AssistantResponse
// @Failure 400 {object} ErrorResponse
// @Router /ai/assistant [post]
func (h *AIHandler) Assistant(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.LogRequest(c, "Unreadable assistant request", "error", err)
	}

	question, ok := req.Question.(string)
	if !ok || question == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: assistantBadRequest})
		return
	}

	h.LogRequest(c, "Assistant question", "length", len(question))

	resp, err := h.aiService.AnswerQuestion(c.Request.Context(), question)
	if err != nil {
		h.LogError(c, err, "Assistant request failed")
		c.JSON(http.StatusOK, models.AssistantResponse{Response: assistantRouteError})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateMindMap
// @Summary Mind map of a lecture
// @Tags ai
// @Param request body models.LectureRequest true "Lecture"
// @Success 200 {object} models.MindMap
// @Failure 500 {object} ErrorResponse
// @Router /ai/mindmap [post]
func (h *AIHandler) GenerateMindMap(c *gin.Context) {
	var req models.LectureRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payload, err := h.aiService.GenerateMindMap(c.Request.Context(), req.LectureID)
	h.respondPayload(c, payload, err, "Failed to generate mind map")
}

// SummarizeLecture
// @Summary Lecture summary and key points
// @Tags ai
// @Param request body models.LectureRequest true "Lecture"
// @Success 200 {object} models.LectureSummary
// @Failure 500 {object} ErrorResponse
// @Router /ai/summarize [post]
func (h *AIHandler) SummarizeLecture(c *gin.Context) {
	var req models.LectureRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payload, err := h.aiService.SummarizeLecture(c.Request.Context(), req.LectureID)
	h.respondPayload(c, payload, err, "Failed to summarize lecture")
}

// GenerateHint
// @Summary Assignment hint
// @Tags ai
// @Param request body models.HintRequest true "Assignment question"
// @Success 200 {object} models.Hint
// @Failure 500 {object} ErrorResponse
// @Router /ai/hint [post]
func (h *AIHandler) GenerateHint(c *gin.Context) {
	var req models.HintRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payload, err := h.aiService.GenerateHint(c.Request.Context(), req.AssignmentID, req.QuestionID)
	h.respondPayload(c, payload, err, "Failed to generate hint")
}

// GenerateQuiz
// @Summary Multiple-choice quiz from documents
// @Tags ai
// @Param request body models.QuizRequest true "Documents"
// @Success 200 {object} models.Quiz
// @Failure 500 {object} ErrorResponse
// @Router /ai/generate-quiz [post]
func (h *AIHandler) GenerateQuiz(c *gin.Context) {
	var req models.QuizRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payload, err := h.aiService.GenerateQuiz(c.Request.Context(), req.DocumentIDs)
	h.respondPayload(c, payload, err, "Failed to generate quiz")
}

// ExportQuiz generates a quiz and downloads it as a spreadsheet
// @Summary Quiz as xlsx
// @Tags ai
// @Param request body models.QuizRequest true "Documents"
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /ai/generate-quiz/export [post]
func (h *AIHandler) ExportQuiz(c *gin.Context) {
	var req models.QuizRequest
	if !h.bindJSON(c, &req) {
		return
	}

	data, err := h.exportService.ExportQuiz(c.Request.Context(), req.DocumentIDs)
	if err != nil {
		h.LogError(c, err, "Quiz export failed")
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to export quiz", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quiz.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// CheckPlagiarism
// @Summary Plagiarism score for a submission
// @Tags ai
// @Param request body models.PlagiarismRequest true "Submission"
// @Success 200 {object} models.PlagiarismResult
// @Failure 500 {object} ErrorResponse
// @Router /ai/plagiarism-check [post]
func (h *AIHandler) CheckPlagiarism(c *gin.Context) {
	var req models.PlagiarismRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payload, err := h.aiService.CheckPlagiarism(c.Request.Context(), req.SubmissionID)
	h.respondPayload(c, payload, err, "Failed to check plagiarism")
}

// GenerateSuggestions
// @Summary Teaching suggestions
// @Tags ai
// @Param request body models.SuggestionsRequest true "Students"
// @Success 200 {object} models.TeachingSuggestions
// @Failure 500 {object} ErrorResponse
// @Router /ai/suggestions [post]
func (h *AIHandler) GenerateSuggestions(c *gin.Context) {
	var req models.SuggestionsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payload, err := h.aiService.GenerateSuggestions(c.Request.Context(), req.StudentIDs)
	h.respondPayload(c, payload, err, "Failed to generate suggestions")
}

func (h *AIHandler) respondPayload(c *gin.Context, payload models.AIPayload, err error, failure string) {
	if err != nil {
		h.LogError(c, err, failure)
		h.RespondWithError(c, http.StatusInternalServerError, failure, err)
		return
	}
	if payload == nil {
		payload = models.AIPayload{}
	}
	c.JSON(http.StatusOK, payload)
}
