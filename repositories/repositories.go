package repositories

import (
	"context"

	"faq-assistant/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repositories bundles every repository bound to the same connection or
// transaction.
type Repositories struct {
	Users      UserRepository
	Categories CategoryRepository
	Tags       TagRepository
	Faqs       FaqRepository
	Ratings    RatingRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:      NewUserRepository(db),
		Categories: NewCategoryRepository(db),
		Tags:       NewTagRepository(db),
		Faqs:       NewFaqRepository(db),
		Ratings:    NewRatingRepository(db),
	}
}

// UnitOfWork runs fn inside one transaction. Returning an error from fn
// rolls back every write made through the given repositories.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(repos Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// AutoMigrate creates or updates the schema, including the partial unique
// indexes declared on the models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Faq{},
		&models.FaqTag{},
		&models.Rating{},
	)
}

func insert(ctx context.Context, db *gorm.DB, value any) error {
	return translateError(db.WithContext(ctx).Omit(clause.Associations).Create(value).Error)
}

func save(ctx context.Context, db *gorm.DB, value any) error {
	return translateError(db.WithContext(ctx).Omit(clause.Associations).Save(value).Error)
}

func first[T any](ctx context.Context, db *gorm.DB, query any, args ...any) (*T, error) {
	var out T
	err := db.WithContext(ctx).Where(query, args...).First(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// page counts rows matching q, then loads one page with scopes applied.
func page[T any](q *gorm.DB, params models.PageParams, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []T
	err := q.Session(&gorm.Session{}).
		Scopes(scopes...).
		Order(order).
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&items).Error
	return items, total, err
}
