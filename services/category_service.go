package services

import (
	"context"
	"log/slog"
	"time"

	"faq-assistant/models"
	"faq-assistant/repositories"

	"github.com/google/uuid"
)

type CategoryService interface {
	Create(ctx context.Context, actor uuid.UUID, req models.CreateCategoryRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateCategoryRequest) (uuid.UUID, error)
	Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CategoryResponse, error)
	GetAll(ctx context.Context) ([]models.CategoryResponse, error)
	List(ctx context.Context, params models.PageParams) (models.PagedResult[models.CategoryResponse], error)
}

type categoryService struct {
	repos repositories.Repositories
	uow   repositories.UnitOfWork
	now   func() time.Time
}

func NewCategoryService(repos repositories.Repositories, uow repositories.UnitOfWork) CategoryService {
	return &categoryService{repos: repos, uow: uow, now: utcNow}
}

func (s *categoryService) Create(ctx context.Context, actor uuid.UUID, req models.CreateCategoryRequest) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}
	name, err := requireText(req.Name, msgNameEmpty)
	if err != nil {
		return uuid.Nil, err
	}

	category := &models.Category{EntityBase: models.NewEntityBase(s.now()), Name: name}
	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		_, err := repos.Categories.GetActiveByName(ctx, name)
		if err == nil {
			return conflictf(msgCategoryExistsFmt, name)
		}
		if !lookupMiss(err) {
			return err
		}
		return conflictOnDuplicate(repos.Categories.Create(ctx, category), msgCategoryExistsFmt, name)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("category created", "category_id", category.ID, "name", name)
	return category.ID, nil
}

func (s *categoryService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateCategoryRequest) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}
	name, err := requireText(req.Name, msgNameEmpty)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		category, err := repos.Categories.GetByID(ctx, id)
		if err := ensureActive(category, err, msgCategoryNotFound); err != nil {
			return err
		}

		existing, err := repos.Categories.GetActiveByName(ctx, name)
		if err == nil && existing.ID != category.ID {
			return conflictf(msgCategoryConflictFmt, name)
		}
		if err != nil && !lookupMiss(err) {
			return err
		}

		category.Name = name
		category.Touch(s.now())
		return conflictOnDuplicate(repos.Categories.Update(ctx, category), msgCategoryConflictFmt, name)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete refuses to hide a category that still groups active faqs.
func (s *categoryService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}

	err := s.uow.Do(ctx, func(repos repositories.Repositories) error {
		category, err := repos.Categories.GetByID(ctx, id)
		if err := ensureActive(category, err, msgCategoryNotFound); err != nil {
			return err
		}

		inUse, err := repos.Faqs.CountActiveByCategory(ctx, id)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return conflictf(msgCategoryInUseFmt, category.Name, inUse)
		}

		category.SoftDelete(s.now())
		return repos.Categories.Update(ctx, category)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("category deleted", "category_id", id)
	return id, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.CategoryResponse, error) {
	category, err := s.repos.Categories.GetByID(ctx, id)
	if err := ensureActive(category, err, msgCategoryNotFound); err != nil {
		return nil, err
	}
	res := toCategoryResponse(*category)
	return &res, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.CategoryResponse, error) {
	categories, err := s.repos.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapSlice(categories, toCategoryResponse), nil
}

func (s *categoryService) List(ctx context.Context, params models.PageParams) (models.PagedResult[models.CategoryResponse], error) {
	params = params.Normalize()
	categories, total, err := s.repos.Categories.List(ctx, params)
	if err != nil {
		return models.PagedResult[models.CategoryResponse]{}, err
	}
	return models.NewPagedResult(mapSlice(categories, toCategoryResponse), total, params), nil
}
