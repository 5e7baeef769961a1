package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"gorm.io/datatypes"

	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
)

// HistoryRecorder stores every generated AI payload as an AIContent record.
type HistoryRecorder struct {
	subscriber message.Subscriber
	repo       repositories.EntityRepository[models.AIContent]
	logger     *slog.Logger
}

func NewHistoryRecorder(subscriber message.Subscriber, repo repositories.EntityRepository[models.AIContent], logger *slog.Logger) *HistoryRecorder {
	return &HistoryRecorder{subscriber: subscriber, repo: repo, logger: logger}
}

// Start subscribes before returning and consumes until ctx is cancelled.
func (r *HistoryRecorder) Start(ctx context.Context) error {
	messages, err := r.subscriber.Subscribe(ctx, TopicAIContentGenerated)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", TopicAIContentGenerated, err)
	}

	go func() {
		for msg := range messages {
			if err := r.handle(msg); err != nil {
				r.logger.Error("Failed to record AI content", "message_id", msg.UUID, "error", err)
			}
			// Acked even on failure; malformed events are dropped.
			msg.Ack()
		}
		r.logger.Info("History recorder stopped")
	}()

	return nil
}

func (r *HistoryRecorder) handle(msg *message.Message) error {
	var event Event
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("invalid event envelope: %w", err)
	}

	var data AIContentGenerated
	if err := json.Unmarshal(event.Data, &data); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	content, err := json.Marshal(data.Content)
	if err != nil {
		return err
	}

	record := &models.AIContent{
		Feature:    data.Feature,
		SubjectRef: data.SubjectRef,
		Content:    datatypes.JSON(content),
	}
	if err := r.repo.Create(msg.Context(), record); err != nil {
		return fmt.Errorf("failed to store AI content: %w", err)
	}

	r.logger.Debug("AI content recorded", "id", record.ID, "feature", record.Feature)
	return nil
}
