package repositories

import (
	"context"

	"faq-assistant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetActiveByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	List(ctx context.Context, params models.PageParams) ([]models.Category, int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return insert(ctx, r.db, category)
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	return save(ctx, r.db, category)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return first[models.Category](ctx, r.db, "id = ?", id)
}

func (r *categoryRepository) GetActiveByName(ctx context.Context, name string) (*models.Category, error) {
	return first[models.Category](ctx, r.db, "name = ? AND is_deleted = ?", name, false)
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) List(ctx context.Context, params models.PageParams) ([]models.Category, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Category{}).Where("is_deleted = ?", false)
	if params.Search != "" {
		q = q.Where("name ILIKE ?", containsPattern(params.Search))
	}
	return page[models.Category](q, params, "name ASC")
}
