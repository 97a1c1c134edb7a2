package models

import "github.com/google/uuid"

// Faq is a question/answer entry. Its rating is derived from Ratings on read.
type Faq struct {
	EntityBase
	Question   string    `json:"question" gorm:"type:text;not null"`
	Answer     string    `json:"answer" gorm:"type:text;not null"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;not null;index"`
	User       *User     `json:"-" gorm:"foreignKey:UserID"`
	Category   *Category `json:"-" gorm:"foreignKey:CategoryID"`
	Tags       []FaqTag  `json:"-" gorm:"foreignKey:FaqID"`
	Ratings    []Rating  `json:"-" gorm:"foreignKey:FaqID"`
}

// ActiveTagIDs returns the tag ids of non-deleted associations.
func (f *Faq) ActiveTagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(f.Tags))
	for _, ft := range f.Tags {
		if !ft.IsDeleted {
			ids = append(ids, ft.TagID)
		}
	}
	return ids
}

// FaqTag links a Faq to a Tag. It carries its own envelope so a link can be
// detached and later reactivated. Many deleted rows may exist for one pair.
type FaqTag struct {
	EntityBase
	FaqID uuid.UUID `json:"faq_id" gorm:"type:uuid;not null;uniqueIndex:idx_faq_tags_pair_active,where:is_deleted = false"`
	TagID uuid.UUID `json:"tag_id" gorm:"type:uuid;not null;uniqueIndex:idx_faq_tags_pair_active,where:is_deleted = false;index"`
	Tag   *Tag      `json:"-" gorm:"foreignKey:TagID"`
}

// Rating is one user's vote on one Faq. At most one active row per pair.
type Rating struct {
	EntityBase
	FaqID    uuid.UUID `json:"faq_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_pair_active,where:is_deleted = false"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_pair_active,where:is_deleted = false;index"`
	IsUpvote bool      `json:"is_upvote" gorm:"not null"`
}
