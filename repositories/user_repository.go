package repositories

import (
	"context"

	"faq-assistant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*models.User, error)
	FindActiveByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error)
	List(ctx context.Context, params models.PageParams) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return insert(ctx, r.db, user)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return save(ctx, r.db, user)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return first[models.User](ctx, r.db, "id = ?", id)
}

func (r *userRepository) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	return first[models.User](ctx, r.db, "username = ? AND is_deleted = ?", username, false)
}

func (r *userRepository) FindActiveByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Where("(username = ? OR email = ?)", username, email).
		Find(&users).Error
	return users, err
}

func (r *userRepository) List(ctx context.Context, params models.PageParams) ([]models.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.User{}).Where("is_deleted = ?", false)
	if params.Search != "" {
		p := containsPattern(params.Search)
		q = q.Where("(username ILIKE ? OR email ILIKE ?)", p, p)
	}
	return page[models.User](q, params, "created_at ASC")
}
