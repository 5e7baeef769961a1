package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmiclearn/learning-service/internal/cache"
	"github.com/cosmiclearn/learning-service/internal/events"
	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories/memory"
)

type aiFixture struct {
	svc       AIService
	completer *fakeCompleter
	db        *memory.DB
	publisher *events.MockEventPublisher
}

func newAIFixture(t *testing.T, completer *fakeCompleter, helper *cache.CacheHelper) *aiFixture {
	t.Helper()
	db := memory.Open()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := NewAIService(completer, db, helper, time.Minute, publisher, discardLogger())
	return &aiFixture{svc: svc, completer: completer, db: db, publisher: publisher}
}

func TestFallbackAnswer(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{name: "math keyword", question: "Can you help with calculus?", want: fallbackTopics[1].answer},
		{name: "science keyword", question: "What is an ATOM made of?", want: fallbackTopics[0].answer},
		{name: "literature keyword", question: "Who wrote this novel", want: fallbackTopics[2].answer},
		{name: "science wins over math", question: "physics equation", want: fallbackTopics[0].answer},
		{name: "substring match", question: "mathematical proofs", want: fallbackTopics[1].answer},
		{name: "no keyword", question: "hello there", want: genericFallbackAnswer},
		{name: "empty", question: "", want: genericFallbackAnswer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fallbackAnswer(tt.question))
		})
	}
}

func TestAIService_AnswerQuestion(t *testing.T) {
	ctx := context.Background()

	t.Run("no credential uses fallback without calling out", func(t *testing.T) {
		f := newAIFixture(t, &fakeCompleter{available: false}, nil)

		resp, err := f.svc.AnswerQuestion(ctx, "calculus")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(resp.Response, "Mathematics is all about patterns"))
		assert.Empty(t, f.completer.calls())

		resp, err = f.svc.AnswerQuestion(ctx, "tell me something")
		require.NoError(t, err)
		assert.Equal(t, genericFallbackAnswer, resp.Response)
	})

	t.Run("reply is returned and stored as two messages", func(t *testing.T) {
		f := newAIFixture(t, &fakeCompleter{available: true, reply: "Energy is quantized."}, nil)

		resp, err := f.svc.AnswerQuestion(ctx, "What is a photon?")
		require.NoError(t, err)
		assert.Equal(t, "Energy is quantized.", resp.Response)

		calls := f.completer.calls()
		require.Len(t, calls, 1)
		assert.Equal(t, assistantSystemPrompt, calls[0].System)
		assert.Equal(t, "What is a photon?", calls[0].User)
		assert.False(t, calls[0].JSON)

		msgs, err := f.db.ChatMessage().List(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, models.SenderUser, msgs[0].Sender)
		assert.Equal(t, "What is a photon?", msgs[0].Content)
		assert.Equal(t, models.SenderAI, msgs[1].Sender)
		assert.Equal(t, "Energy is quantized.", msgs[1].Content)
	})

	t.Run("completion error becomes apology", func(t *testing.T) {
		f := newAIFixture(t, &fakeCompleter{available: true, err: errors.New("timeout")}, nil)

		resp, err := f.svc.AnswerQuestion(ctx, "Why?")
		require.NoError(t, err)
		assert.Equal(t, assistantErrorReply, resp.Response)
	})

	t.Run("empty reply", func(t *testing.T) {
		f := newAIFixture(t, &fakeCompleter{available: true, reply: ""}, nil)

		resp, err := f.svc.AnswerQuestion(ctx, "Why?")
		require.NoError(t, err)
		assert.Equal(t, assistantEmptyReply, resp.Response)
	})

	t.Run("cancelled context", func(t *testing.T) {
		f := newAIFixture(t, &fakeCompleter{available: true, reply: "x"}, nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := f.svc.AnswerQuestion(cctx, "Why?")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAIService_JSONFeatures(t *testing.T) {
	ctx := context.Background()
	reply := `{"result":"ok","n":3}`
	plagiarismPrompt := "Compare the following submission with the reference content and provide a plagiarism score: \n" +
		"          \n" +
		"          Submission: " + sampleSubmission + "\n" +
		"          \n" +
		"          Reference: " + sampleReference

	tests := []struct {
		name    string
		call    func(AIService) (models.AIPayload, error)
		system  string
		user    string
		feature models.AIFeature
	}{
		{
			name:    "calendar",
			call:    func(s AIService) (models.AIPayload, error) { return s.GenerateCalendar(ctx, 42) },
			system:  calendarSystemPrompt,
			user:    "Use studentId: 42 to personalize content.",
			feature: models.FeatureCalendar,
		},
		{
			name:    "mind map",
			call:    func(s AIService) (models.AIPayload, error) { return s.GenerateMindMap(ctx, 1) },
			system:  mindMapSystemPrompt,
			user:    "Generate a mind map for the following lecture content: " + sampleLectureShort,
			feature: models.FeatureMindMap,
		},
		{
			name:    "summary",
			call:    func(s AIService) (models.AIPayload, error) { return s.SummarizeLecture(ctx, 1) },
			system:  summarySystemPrompt,
			user:    sampleLectureLong,
			feature: models.FeatureSummary,
		},
		{
			name:    "hint",
			call:    func(s AIService) (models.AIPayload, error) { return s.GenerateHint(ctx, 1, 2) },
			system:  hintSystemPrompt,
			user:    sampleHintQuestion,
			feature: models.FeatureHint,
		},
		{
			name:    "quiz",
			call:    func(s AIService) (models.AIPayload, error) { return s.GenerateQuiz(ctx, []uint{1, 2}) },
			system:  quizSystemPrompt,
			user:    sampleQuizDocument,
			feature: models.FeatureQuiz,
		},
		{
			name:    "plagiarism",
			call:    func(s AIService) (models.AIPayload, error) { return s.CheckPlagiarism(ctx, 1) },
			system:  plagiarismSystemPrompt,
			user:    plagiarismPrompt,
			feature: models.FeaturePlagiarism,
		},
		{
			name:    "suggestions",
			call:    func(s AIService) (models.AIPayload, error) { return s.GenerateSuggestions(ctx, []uint{1, 2}) },
			system:  suggestionsSystemPrompt,
			user:    sampleStudentData,
			feature: models.FeatureSuggestions,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAIFixture(t, &fakeCompleter{available: true, reply: reply}, nil)

			got, err := tt.call(f.svc)
			require.NoError(t, err)
			assert.Equal(t, models.AIPayload{"result": "ok", "n": float64(3)}, got)

			calls := f.completer.calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.system, calls[0].System)
			assert.Contains(t, calls[0].User, tt.user)
			assert.True(t, calls[0].JSON)

			published := f.publisher.GetPublishedEvents()
			require.Len(t, published, 1)
			assert.Equal(t, events.TopicAIContentGenerated, published[0].Type)
			assert.Contains(t, string(published[0].Data), `"feature":"`+string(tt.feature)+`"`)
		})
	}
}

func TestAIService_UnusableReplyBecomesEmptyObject(t *testing.T) {
	for _, reply := range []string{"", "   ", "Sure! Here is your quiz.", "[1,2,3]", "null", `"text"`, "{broken"} {
		t.Run(reply, func(t *testing.T) {
			f := newAIFixture(t, &fakeCompleter{available: true, reply: reply}, nil)

			got, err := f.svc.GenerateQuiz(context.Background(), nil)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestAIService_NoCredentialFailsJSONFeatures(t *testing.T) {
	f := newAIFixture(t, &fakeCompleter{available: false}, nil)

	_, err := f.svc.GenerateHint(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrCompletionUnavailable)
	assert.Empty(t, f.completer.calls())
	assert.Empty(t, f.publisher.GetPublishedEvents())
}

func TestAIService_CompletionErrorPropagates(t *testing.T) {
	upstream := errors.New("upstream 500")
	f := newAIFixture(t, &fakeCompleter{available: true, err: upstream}, nil)

	_, err := f.svc.SummarizeLecture(context.Background(), 1)
	assert.ErrorIs(t, err, upstream)
	assert.Empty(t, f.publisher.GetPublishedEvents())
}

func TestAIService_UsesStoredContent(t *testing.T) {
	ctx := context.Background()
	f := newAIFixture(t, &fakeCompleter{available: true, reply: `{}`}, nil)

	lecture := &models.Lecture{Title: "Optics", Content: "Light bends when it changes medium."}
	require.NoError(t, f.db.Lecture().Create(ctx, lecture))
	blank := &models.Lecture{Title: "Empty"}
	require.NoError(t, f.db.Lecture().Create(ctx, blank))
	sub := &models.Submission{AssignmentID: 1, StudentID: 1, Content: "My own words on entanglement."}
	require.NoError(t, f.db.Submission().Create(ctx, sub))

	_, err := f.svc.GenerateMindMap(ctx, lecture.ID)
	require.NoError(t, err)
	_, err = f.svc.SummarizeLecture(ctx, blank.ID)
	require.NoError(t, err)
	_, err = f.svc.CheckPlagiarism(ctx, sub.ID)
	require.NoError(t, err)
	_, err = f.svc.CheckPlagiarism(ctx, 999)
	require.NoError(t, err)

	calls := f.completer.calls()
	require.Len(t, calls, 4)
	assert.Contains(t, calls[0].User, "Light bends when it changes medium.")
	assert.Contains(t, calls[1].User, sampleLectureLong)
	assert.Contains(t, calls[2].User, "Submission: My own words on entanglement.")
	assert.Contains(t, calls[3].User, "Submission: "+sampleSubmission)
}

func TestAIService_CachesCompletions(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	helper := cache.NewCacheHelper(client, cache.CompletionCacheConfig.Prefix)
	f := newAIFixture(t, &fakeCompleter{available: true, reply: `{"hint":"h"}`}, helper)
	ctx := context.Background()

	first, err := f.svc.GenerateHint(ctx, 1, 1)
	require.NoError(t, err)
	second, err := f.svc.GenerateHint(ctx, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, f.completer.calls(), 1)

	// A different prompt misses.
	_, err = f.svc.GenerateCalendar(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, f.completer.calls(), 2)
}
