package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cosmiclearn/learning-service/internal/events"
	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories/memory"
	"github.com/cosmiclearn/learning-service/internal/validator"
)

func newTestAuthService(t *testing.T) (*authService, *memory.DB, *events.MockEventPublisher) {
	t.Helper()
	db := memory.Open()
	publisher := events.NewMockEventPublisher(discardLogger())
	svc := NewAuthService(db, publisher, discardLogger(), validator.New()).(*authService)
	svc.cost = bcrypt.MinCost
	return svc, db, publisher
}

func TestAuthService_Register(t *testing.T) {
	svc, db, publisher := newTestAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &models.RegisterRequest{Username: "ada", Password: "secret-1", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEqual(t, []byte("secret-1"), user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("secret-1")))

	stored, err := db.User().GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Name)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.TopicUserRegistered, published[0].Type)
}

func TestAuthService_RegisterDuplicateKeepsFirst(t *testing.T) {
	svc, db, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Username: "ada", Password: "first-pw", Name: "First"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &models.RegisterRequest{Username: "ada", Password: "second-pw", Name: "Second"})
	assert.ErrorIs(t, err, ErrUserExists)

	stored, err := db.User().GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "First", stored.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("first-pw")))
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{name: "missing username", req: &models.RegisterRequest{Password: "secret-1"}},
		{name: "short password", req: &models.RegisterRequest{Username: "ada", Password: "123"}},
		{name: "bad role", req: &models.RegisterRequest{Username: "ada", Password: "secret-1", Role: "admin"}},
		{name: "password equals username", req: &models.RegisterRequest{Username: "adalove", Password: "AdaLove"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestAuthService_ConcurrentRegistration(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	var wg sync.WaitGroup
	var created, duplicates atomic.Int32
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Register(context.Background(), &models.RegisterRequest{
				Username: "racer", Password: fmt.Sprintf("password-%d", i),
			})
			switch {
			case err == nil:
				created.Add(1)
			case assert.ErrorIs(t, err, ErrUserExists):
				duplicates.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(19), duplicates.Load())
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Username: "grace", Password: "hopper-1"})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &models.LoginRequest{Username: "grace", Password: "hopper-1"})
	require.NoError(t, err)
	assert.Equal(t, "grace", user.Username)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "grace", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "nobody", Password: "hopper-1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "grace"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterRejectsOverlongPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Username: "ada", Password: strings.Repeat("é", 40)})
	assert.ErrorIs(t, err, ErrValidationFailed)

	users, err := repo.User().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAuthService_GetUser(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, &models.RegisterRequest{Username: "linus", Password: "kernel-1"})
	require.NoError(t, err)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "linus", got.Username)

	_, err = svc.GetUser(ctx, 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
