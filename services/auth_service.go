package services

import (
	"context"
	"log/slog"
	"time"

	"faq-assistant/models"
	"faq-assistant/repositories"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
}

type authService struct {
	repos  repositories.Repositories
	uow    repositories.UnitOfWork
	hasher PasswordHasher
	tokens TokenService
	now    func() time.Time
}

func NewAuthService(repos repositories.Repositories, uow repositories.UnitOfWork, hasher PasswordHasher, tokens TokenService) AuthService {
	return &authService{repos: repos, uow: uow, hasher: hasher, tokens: tokens, now: utcNow}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		EntityBase:   models.NewEntityBase(s.now()),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		existing, err := repos.Users.FindActiveByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return conflictf(msgUserExists)
		}
		return conflictOnDuplicate(repos.Users.Create(ctx, user), msgUserExists)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	return s.authResponse(user)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.repos.Users.GetActiveByUsername(ctx, req.Username)
	if err != nil {
		if lookupMiss(err) {
			return nil, models.ErrorUnauthorized{Message: msgInvalidCredentials}
		}
		return nil, err
	}
	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		slog.Warn("login rejected", "username", req.Username)
		return nil, models.ErrorUnauthorized{Message: msgInvalidCredentials}
	}
	return s.authResponse(user)
}

func (s *authService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	if err := requireActor(id); err != nil {
		return nil, err
	}
	user, err := s.repos.Users.GetByID(ctx, id)
	if err := ensureActive(user, err, msgUserNotFound); err != nil {
		return nil, err
	}
	res := toUserResponse(*user)
	return &res, nil
}

func (s *authService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
