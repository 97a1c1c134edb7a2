package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntityBase is the lifecycle envelope shared by every persisted entity.
// Rows are never physically removed; IsDeleted hides them from default reads.
type EntityBase struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null;autoCreateTime:false"`
	LastUpdatedAt time.Time `json:"last_updated_at" gorm:"not null;autoUpdateTime:false"`
	IsDeleted     bool      `json:"-" gorm:"not null;default:false;index"`
}

func NewEntityBase(now time.Time) EntityBase {
	return EntityBase{
		ID:            uuid.New(),
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

// Touch refreshes LastUpdatedAt without ever moving it backwards.
func (e *EntityBase) Touch(now time.Time) {
	if now.After(e.LastUpdatedAt) {
		e.LastUpdatedAt = now
	}
}

func (e *EntityBase) SoftDelete(now time.Time) {
	e.IsDeleted = true
	e.Touch(now)
}

func (e *EntityBase) Restore(now time.Time) {
	e.IsDeleted = false
	e.Touch(now)
}

func (e *EntityBase) Active() bool {
	return e != nil && !e.IsDeleted
}

// BeforeCreate fills in identity and timestamps for rows built without NewEntityBase.
func (e *EntityBase) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.LastUpdatedAt.IsZero() {
		e.LastUpdatedAt = e.CreatedAt
	}
	return nil
}
