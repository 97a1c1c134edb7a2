package services

import (
	"context"
	"log/slog"
	"time"

	"faq-assistant/models"
	"faq-assistant/repositories"

	"github.com/google/uuid"
)

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
	List(ctx context.Context, params models.PageParams) (models.PagedResult[models.UserResponse], error)
	Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateUserRequest) (uuid.UUID, error)
	Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
}

type userService struct {
	repos repositories.Repositories
	uow   repositories.UnitOfWork
	now   func() time.Time
}

func NewUserService(repos repositories.Repositories, uow repositories.UnitOfWork) UserService {
	return &userService{repos: repos, uow: uow, now: utcNow}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.repos.Users.GetByID(ctx, id)
	if err := ensureActive(user, err, msgUserNotFound); err != nil {
		return nil, err
	}
	res := toUserResponse(*user)
	return &res, nil
}

func (s *userService) List(ctx context.Context, params models.PageParams) (models.PagedResult[models.UserResponse], error) {
	params = params.Normalize()
	users, total, err := s.repos.Users.List(ctx, params)
	if err != nil {
		return models.PagedResult[models.UserResponse]{}, err
	}
	return models.NewPagedResult(mapSlice(users, toUserResponse), total, params), nil
}

func (s *userService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateUserRequest) (uuid.UUID, error) {
	if err := requireOwner(actor, id, msgUserUpdateForbidden); err != nil {
		return uuid.Nil, err
	}
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		user, err := repos.Users.GetByID(ctx, id)
		if err := ensureActive(user, err, msgUserNotFound); err != nil {
			return err
		}

		matches, err := repos.Users.FindActiveByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return err
		}
		for _, m := range matches {
			if m.ID != user.ID {
				return conflictf(msgUserExists)
			}
		}

		user.Username = username
		user.Email = email
		user.Touch(s.now())
		return conflictOnDuplicate(repos.Users.Update(ctx, user), msgUserExists)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *userService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	if err := requireOwner(actor, id, msgUserDeleteForbidden); err != nil {
		return uuid.Nil, err
	}

	err := s.uow.Do(ctx, func(repos repositories.Repositories) error {
		user, err := repos.Users.GetByID(ctx, id)
		if err := ensureActive(user, err, msgUserNotFound); err != nil {
			return err
		}
		user.SoftDelete(s.now())
		return repos.Users.Update(ctx, user)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("user deleted", "user_id", id)
	return id, nil
}
