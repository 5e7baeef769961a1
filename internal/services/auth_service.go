package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/cosmiclearn/learning-service/internal/events"
	"github.com/cosmiclearn/learning-service/internal/models"
	"github.com/cosmiclearn/learning-service/internal/repositories"
	"github.com/cosmiclearn/learning-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *validator.Validator

	cost      int
	dummyOnce sync.Once
	dummyHash []byte
}

func NewAuthService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *validator.Validator) AuthService {
	return &authService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
		cost:      bcrypt.DefaultCost,
	}
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	user, err := s.repo.User().GetByUsername(ctx, req.Username)
	if err != nil {
		if !repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		// Unknown users cost one bcrypt comparison too.
		_ = bcrypt.CompareHashAndPassword(s.unknownUserHash(), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("User logged in", "user_id", user.ID)
	return user, nil
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if errs := s.validator.GetBusinessValidator().ValidateRegistration(req); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	user := &models.User{
		Username:     req.Username,
		Name:         req.Name,
		Role:         role,
		PasswordHash: hash,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)
	s.publishRegistered(ctx, user)

	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *authService) unknownUserHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), s.cost)
		if err != nil {
			s.logger.Error("Failed to build placeholder hash", "error", err)
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func (s *authService) publishRegistered(ctx context.Context, user *models.User) {
	if s.publisher == nil {
		return
	}

	event, err := events.NewEvent(events.TopicUserRegistered, events.UserRegistered{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		s.logger.Error("Failed to publish user registered event", "user_id", user.ID, "error", err)
	}
}
