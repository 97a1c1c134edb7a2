package repositories

import (
	"context"

	"faq-assistant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	GetActiveByName(ctx context.Context, name string) (*models.Tag, error)
	GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error)
	GetAll(ctx context.Context) ([]models.Tag, error)
	List(ctx context.Context, params models.PageParams) ([]models.Tag, int64, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	return insert(ctx, r.db, tag)
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	return save(ctx, r.db, tag)
}

func (r *tagRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	return first[models.Tag](ctx, r.db, "id = ?", id)
}

func (r *tagRepository) GetActiveByName(ctx context.Context, name string) (*models.Tag, error) {
	return first[models.Tag](ctx, r.db, "name = ? AND is_deleted = ?", name, false)
}

func (r *tagRepository) GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ? AND is_deleted = ?", ids, false).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("name ASC").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) List(ctx context.Context, params models.PageParams) ([]models.Tag, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Tag{}).Where("is_deleted = ?", false)
	if params.Search != "" {
		q = q.Where("name ILIKE ?", containsPattern(params.Search))
	}
	return page[models.Tag](q, params, "name ASC")
}
