package repositories

import (
	"context"

	"faq-assistant/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	Update(ctx context.Context, rating *models.Rating) error
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	return insert(ctx, r.db, rating)
}

func (r *ratingRepository) Update(ctx context.Context, rating *models.Rating) error {
	return save(ctx, r.db, rating)
}
