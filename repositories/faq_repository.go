package repositories

import (
	"context"

	"faq-assistant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *models.Faq) error
	Update(ctx context.Context, faq *models.Faq) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Faq, error)
	// GetWithTags loads every FaqTag row of the faq, deleted ones included.
	GetWithTags(ctx context.Context, id uuid.UUID) (*models.Faq, error)
	// GetWithRatings loads every Rating row of the faq, deleted ones included.
	GetWithRatings(ctx context.Context, id uuid.UUID) (*models.Faq, error)
	AddTags(ctx context.Context, tags []models.FaqTag) error
	UpdateTags(ctx context.Context, tags []*models.FaqTag) error
	CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	// GetDetails loads an active faq with its author, category, active tag
	// links and active ratings.
	GetDetails(ctx context.Context, id uuid.UUID) (*models.Faq, error)
	ListDetails(ctx context.Context, params models.FaqListParams) ([]models.Faq, int64, error)
}

type faqRepository struct {
	db *gorm.DB
}

func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, faq *models.Faq) error {
	return insert(ctx, r.db, faq)
}

func (r *faqRepository) Update(ctx context.Context, faq *models.Faq) error {
	return save(ctx, r.db, faq)
}

func (r *faqRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	return first[models.Faq](ctx, r.db, "id = ?", id)
}

func (r *faqRepository) GetWithTags(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	var faq models.Faq
	err := r.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&faq, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) GetWithRatings(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	var faq models.Faq
	err := r.db.WithContext(ctx).Preload("Ratings").First(&faq, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) AddTags(ctx context.Context, tags []models.FaqTag) error {
	if len(tags) == 0 {
		return nil
	}
	return insert(ctx, r.db, &tags)
}

func (r *faqRepository) UpdateTags(ctx context.Context, tags []*models.FaqTag) error {
	for _, ft := range tags {
		if err := save(ctx, r.db, ft); err != nil {
			return err
		}
	}
	return nil
}

func (r *faqRepository) CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Faq{}).
		Where("category_id = ? AND is_deleted = ?", categoryID, false).
		Count(&count).Error
	return count, err
}

func (r *faqRepository) GetDetails(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	var faq models.Faq
	err := withDetails(r.db.WithContext(ctx)).
		Where("faqs.is_deleted = ?", false).
		First(&faq, "faqs.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) ListDetails(ctx context.Context, params models.FaqListParams) ([]models.Faq, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Faq{}).Where("faqs.is_deleted = ?", false)
	if params.CategoryID != nil {
		q = q.Where("faqs.category_id = ?", *params.CategoryID)
	}
	if params.TagID != nil {
		q = q.Where(`EXISTS (SELECT 1 FROM faq_tags ft
			WHERE ft.faq_id = faqs.id AND ft.tag_id = ? AND ft.is_deleted = false)`, *params.TagID)
	}
	if params.Search != "" {
		p := containsPattern(params.Search)
		q = q.Where(`(faqs.question ILIKE ? OR faqs.answer ILIKE ?
			OR EXISTS (SELECT 1 FROM categories c WHERE c.id = faqs.category_id AND c.name ILIKE ?)
			OR EXISTS (SELECT 1 FROM faq_tags ft JOIN tags t ON t.id = ft.tag_id
				WHERE ft.faq_id = faqs.id AND ft.is_deleted = false AND t.is_deleted = false AND t.name ILIKE ?))`,
			p, p, p, p)
	}
	return page[models.Faq](q, params.PageParams, "faqs.created_at DESC", withDetails)
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Category").
		Preload("Tags", "is_deleted = ?", false).
		Preload("Tags.Tag").
		Preload("Ratings", "is_deleted = ?", false)
}
