package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmiclearn/learning-service/internal/services"
)

// CatalogHandler serves the read-only collections. Each response wraps the
// rows in an object keyed by the collection name.
type CatalogHandler struct {
	BaseHandler
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService, base BaseHandler) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, catalogService: catalogService}
}

func (h *CatalogHandler) ListSubjects(c *gin.Context) {
	listCollection(h, c, "subjects", h.catalogService.ListSubjects)
}

func (h *CatalogHandler) ListLectures(c *gin.Context) {
	listCollection(h, c, "lectures", h.catalogService.ListLectures)
}

func (h *CatalogHandler) ListAssignments(c *gin.Context) {
	listCollection(h, c, "assignments", h.catalogService.ListAssignments)
}

func (h *CatalogHandler) ListSubmissions(c *gin.Context) {
	listCollection(h, c, "submissions", h.catalogService.ListSubmissions)
}

func (h *CatalogHandler) ListDocuments(c *gin.Context) {
	listCollection(h, c, "documents", h.catalogService.ListDocuments)
}

func (h *CatalogHandler) ListStudentProgress(c *gin.Context) {
	listCollection(h, c, "studentProgress", h.catalogService.ListStudentProgress)
}

func (h *CatalogHandler) ListAIContent(c *gin.Context) {
	listCollection(h, c, "aiContent", h.catalogService.ListAIContent)
}

func (h *CatalogHandler) ListChatMessages(c *gin.Context) {
	listCollection(h, c, "chatMessages", h.catalogService.ListChatMessages)
}

func listCollection[T any](h *CatalogHandler, c *gin.Context, key string, list func(context.Context) ([]*T, error)) {
	h.LogRequest(c, "Listing collection", "collection", key)

	rows, err := list(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "Failed to list collection", "collection", key)
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch "+key, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{key: rows})
}
