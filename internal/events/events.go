package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cosmiclearn/learning-service/internal/models"
)

const (
	TopicAIContentGenerated = "ai.content.generated"
	TopicUserRegistered     = "user.registered"
)

const (
	eventSource  = "learning-service"
	eventVersion = "1.0"
)

// Event is the envelope written to every topic.
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Source    string          `json:"source"`
	Version   string          `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewEvent wraps data in an envelope whose type doubles as the topic.
func NewEvent(eventType string, data any) (*Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event data: %w", eventType, err)
	}

	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    eventSource,
		Version:   eventVersion,
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}, nil
}

type AIContentGenerated struct {
	Feature    models.AIFeature `json:"feature"`
	SubjectRef string           `json:"subjectRef,omitempty"`
	Content    models.AIPayload `json:"content"`
}

type UserRegistered struct {
	UserID   uint            `json:"userId"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role,omitempty"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}
