package services

import (
	"context"
	"log/slog"
	"time"

	"faq-assistant/models"
	"faq-assistant/repositories"

	"github.com/google/uuid"
)

type TagService interface {
	Create(ctx context.Context, actor uuid.UUID, req models.CreateTagRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateTagRequest) (uuid.UUID, error)
	Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TagResponse, error)
	GetAll(ctx context.Context) ([]models.TagResponse, error)
	List(ctx context.Context, params models.PageParams) (models.PagedResult[models.TagResponse], error)
}

type tagService struct {
	repos repositories.Repositories
	uow   repositories.UnitOfWork
	now   func() time.Time
}

func NewTagService(repos repositories.Repositories, uow repositories.UnitOfWork) TagService {
	return &tagService{repos: repos, uow: uow, now: utcNow}
}

func (s *tagService) Create(ctx context.Context, actor uuid.UUID, req models.CreateTagRequest) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}
	name, err := requireText(req.Name, msgNameEmpty)
	if err != nil {
		return uuid.Nil, err
	}

	tag := &models.Tag{EntityBase: models.NewEntityBase(s.now()), Name: name}
	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		_, err := repos.Tags.GetActiveByName(ctx, name)
		if err == nil {
			return conflictf(msgTagExistsFmt, name)
		}
		if !lookupMiss(err) {
			return err
		}
		return conflictOnDuplicate(repos.Tags.Create(ctx, tag), msgTagExistsFmt, name)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("tag created", "tag_id", tag.ID, "name", name)
	return tag.ID, nil
}

func (s *tagService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateTagRequest) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}
	name, err := requireText(req.Name, msgNameEmpty)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		tag, err := repos.Tags.GetByID(ctx, id)
		if err := ensureActive(tag, err, msgTagNotFound); err != nil {
			return err
		}

		existing, err := repos.Tags.GetActiveByName(ctx, name)
		if err == nil && existing.ID != tag.ID {
			return conflictf(msgTagConflictFmt, name)
		}
		if err != nil && !lookupMiss(err) {
			return err
		}

		tag.Name = name
		tag.Touch(s.now())
		return conflictOnDuplicate(repos.Tags.Update(ctx, tag), msgTagConflictFmt, name)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete hides the tag. Existing faq links stay in place and read views skip
// deleted tags.
func (s *tagService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}

	err := s.uow.Do(ctx, func(repos repositories.Repositories) error {
		tag, err := repos.Tags.GetByID(ctx, id)
		if err := ensureActive(tag, err, msgTagNotFound); err != nil {
			return err
		}
		tag.SoftDelete(s.now())
		return repos.Tags.Update(ctx, tag)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("tag deleted", "tag_id", id)
	return id, nil
}

func (s *tagService) GetByID(ctx context.Context, id uuid.UUID) (*models.TagResponse, error) {
	tag, err := s.repos.Tags.GetByID(ctx, id)
	if err := ensureActive(tag, err, msgTagNotFound); err != nil {
		return nil, err
	}
	res := toTagResponse(*tag)
	return &res, nil
}

func (s *tagService) GetAll(ctx context.Context) ([]models.TagResponse, error) {
	tags, err := s.repos.Tags.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(tags, toTagResponse), nil
}

func (s *tagService) List(ctx context.Context, params models.PageParams) (models.PagedResult[models.TagResponse], error) {
	params = params.Normalize()
	tags, total, err := s.repos.Tags.List(ctx, params)
	if err != nil {
		return models.PagedResult[models.TagResponse]{}, err
	}
	return models.NewPagedResult(mapSlice(tags, toTagResponse), total, params), nil
}
