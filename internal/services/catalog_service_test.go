package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories/memory"
)

func TestCatalogService_EmptyAfterStart(t *testing.T) {
	svc := NewCatalogService(memory.Open(), discardLogger())
	ctx := context.Background()

	subjects, err := svc.ListSubjects(ctx)
	require.NoError(t, err)
	assert.NotNil(t, subjects)
	assert.Empty(t, subjects)

	progress, err := svc.ListStudentProgress(ctx)
	require.NoError(t, err)
	assert.NotNil(t, progress)
	assert.Empty(t, progress)

	messages, err := svc.ListChatMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestCatalogService_ListsStoredRecords(t *testing.T) {
	db := memory.Open()
	svc := NewCatalogService(db, discardLogger())
	ctx := context.Background()

	require.NoError(t, db.Document().Create(ctx, &models.Document{Title: "Notes", Type: "pdf"}))
	require.NoError(t, db.Document().Create(ctx, &models.Document{Title: "Slides", Type: "ppt"}))

	docs, err := svc.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Notes", docs[0].Title)
	assert.Equal(t, "Slides", docs[1].Title)
}
