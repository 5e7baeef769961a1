package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cosmiclearn/learning-service/internal/cache"
	"github.com/cosmiclearn/learning-service/internal/completion"
	"github.com/cosmiclearn/learning-service/internal/events"
	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
)

type aiService struct {
	completer completion.Completer
	repo      repositories.Repository
	cache     *cache.CacheHelper
	cacheTTL  time.Duration
	publisher events.EventPublisher
	logger    *slog.Logger
}

// NewAIService builds the adapter. cacheHelper and publisher may be nil.
func NewAIService(completer completion.Completer, repo repositories.Repository, cacheHelper *cache.CacheHelper, cacheTTL time.Duration, publisher events.EventPublisher, logger *slog.Logger) AIService {
	if cacheHelper == nil {
		cacheHelper = cache.NewCacheHelper(nil, cache.CompletionCacheConfig.Prefix)
	}
	if cacheTTL <= 0 {
		cacheTTL = cache.CompletionCacheConfig.TTL
	}
	return &aiService{
		completer: completer,
		repo:      repo,
		cache:     cacheHelper,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *aiService) GenerateCalendar(ctx context.Context, studentID uint) (models.AIPayload, error) {
	return s.generate(ctx, models.FeatureCalendar, fmt.Sprintf("student:%d", studentID),
		calendarSystemPrompt, fmt.Sprintf(calendarUserPrompt, studentID))
}

func (s *aiService) AnswerQuestion(ctx context.Context, question string) (*models.AssistantResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var answer string
	if !s.completer.Available() {
		answer = fallbackAnswer(question)
		s.logger.Info("Completion credential missing, using fallback answer")
	} else {
		reply, err := s.completer.Complete(ctx, completion.Request{
			System: assistantSystemPrompt,
			User:   question,
		})
		switch {
		case err != nil:
			s.logger.Error("Assistant completion failed", "error", err)
			answer = assistantErrorReply
		case reply == "":
			answer = assistantEmptyReply
		default:
			answer = reply
		}
	}

	s.recordExchange(ctx, question, answer)
	s.publish(ctx, models.FeatureAssistant, "", models.AIPayload{"response": answer})

	return &models.AssistantResponse{Response: answer}, nil
}

func (s *aiService) GenerateMindMap(ctx context.Context, lectureID uint) (models.AIPayload, error) {
	content := s.lectureContent(ctx, lectureID, sampleLectureShort)
	return s.generate(ctx, models.FeatureMindMap, fmt.Sprintf("lecture:%d", lectureID),
		mindMapSystemPrompt, fmt.Sprintf(mindMapUserPrompt, content))
}

func (s *aiService) SummarizeLecture(ctx context.Context, lectureID uint) (models.AIPayload, error) {
	content := s.lectureContent(ctx, lectureID, sampleLectureLong)
	return s.generate(ctx, models.FeatureSummary, fmt.Sprintf("lecture:%d", lectureID),
		summarySystemPrompt, fmt.Sprintf(summaryUserPrompt, content))
}

func (s *aiService) GenerateHint(ctx context.Context, assignmentID, questionID uint) (models.AIPayload, error) {
	return s.generate(ctx, models.FeatureHint, fmt.Sprintf("assignment:%d/question:%d", assignmentID, questionID),
		hintSystemPrompt, fmt.Sprintf(hintUserPrompt, sampleHintQuestion))
}

func (s *aiService) GenerateQuiz(ctx context.Context, documentIDs []uint) (models.AIPayload, error) {
	return s.generate(ctx, models.FeatureQuiz, "documents:"+joinIDs(documentIDs),
		quizSystemPrompt, fmt.Sprintf(quizUserPrompt, sampleQuizDocument))
}

func (s *aiService) CheckPlagiarism(ctx context.Context, submissionID uint) (models.AIPayload, error) {
	content := sampleSubmission
	if submissionID != 0 {
		sub, err := s.repo.Submission().GetByID(ctx, submissionID)
		switch {
		case err == nil && strings.TrimSpace(sub.Content) != "":
			content = sub.Content
		case err != nil && !repositories.IsNotFoundError(err):
			s.logger.Warn("Failed to load submission, using sample text", "submission_id", submissionID, "error", err)
		}
	}

	return s.generate(ctx, models.FeaturePlagiarism, fmt.Sprintf("submission:%d", submissionID),
		plagiarismSystemPrompt, fmt.Sprintf(plagiarismUserPrompt, content, sampleReference))
}

func (s *aiService) GenerateSuggestions(ctx context.Context, studentIDs []uint) (models.AIPayload, error) {
	return s.generate(ctx, models.FeatureSuggestions, "students:"+joinIDs(studentIDs),
		suggestionsSystemPrompt, fmt.Sprintf(suggestionsUserPrompt, sampleStudentData))
}

// ===== HELPER FUNCTIONS =====

// generate runs one JSON completion through the cache and publishes the
// parsed payload.
func (s *aiService) generate(ctx context.Context, feature models.AIFeature, subjectRef, system, user string) (models.AIPayload, error) {
	if !s.completer.Available() {
		return nil, ErrCompletionUnavailable
	}

	req := completion.Request{System: system, User: user, JSON: true}

	var reply string
	hit, err := s.cache.CacheOrExecute(ctx, s.cacheKey(req), &reply, s.cacheTTL, func() (interface{}, error) {
		return s.completer.Complete(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("%s completion failed: %w", feature, err)
	}
	if hit {
		s.logger.Debug("Completion served from cache", "feature", feature)
	}

	payload := s.parsePayload(feature, reply)
	s.publish(ctx, feature, subjectRef, payload)

	return payload, nil
}

// parsePayload never fails: anything that is not a JSON object becomes {}.
func (s *aiService) parsePayload(feature models.AIFeature, reply string) models.AIPayload {
	if strings.TrimSpace(reply) == "" {
		s.logger.Warn("Empty completion reply", "feature", feature)
		return models.AIPayload{}
	}

	var payload models.AIPayload
	if err := json.Unmarshal([]byte(reply), &payload); err != nil || payload == nil {
		s.logger.Warn("Completion reply is not a JSON object", "feature", feature, "error", err)
		return models.AIPayload{}
	}

	return payload
}

func (s *aiService) cacheKey(req completion.Request) string {
	h := sha256.New()
	for _, part := range []string{s.completer.Model(), req.System, req.User} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (s *aiService) lectureContent(ctx context.Context, lectureID uint, sample string) string {
	if lectureID == 0 {
		return sample
	}

	lecture, err := s.repo.Lecture().GetByID(ctx, lectureID)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			s.logger.Warn("Failed to load lecture, using sample text", "lecture_id", lectureID, "error", err)
		}
		return sample
	}
	if strings.TrimSpace(lecture.Content) == "" {
		return sample
	}
	return lecture.Content
}

func (s *aiService) recordExchange(ctx context.Context, question, answer string) {
	for _, msg := range []*models.ChatMessage{
		{Sender: models.SenderUser, Content: question},
		{Sender: models.SenderAI, Content: answer},
	} {
		if err := s.repo.ChatMessage().Create(ctx, msg); err != nil {
			s.logger.Error("Failed to store chat message", "sender", msg.Sender, "error", err)
			return
		}
	}
}

func (s *aiService) publish(ctx context.Context, feature models.AIFeature, subjectRef string, payload models.AIPayload) {
	if s.publisher == nil {
		return
	}

	event, err := events.NewEvent(events.TopicAIContentGenerated, events.AIContentGenerated{
		Feature:    feature,
		SubjectRef: subjectRef,
		Content:    payload,
	})
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.logger.Error("Failed to publish AI content event", "feature", feature, "error", err)
	}
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ",")
}
