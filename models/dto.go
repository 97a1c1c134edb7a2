package models

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,max=255"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type TagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateFaqRequest struct {
	Question   string      `json:"question" validate:"required"`
	Answer     string      `json:"answer" validate:"required"`
	CategoryID uuid.UUID   `json:"category_id" validate:"required"`
	TagIDs     []uuid.UUID `json:"tag_ids"`
}

// UpdateFaqRequest replaces the question, answer, category and tag set.
// UserID is optional and, when set, must name the caller.
type UpdateFaqRequest struct {
	Question   string      `json:"question" validate:"required"`
	Answer     string      `json:"answer" validate:"required"`
	CategoryID uuid.UUID   `json:"category_id" validate:"required"`
	TagIDs     []uuid.UUID `json:"tag_ids"`
	UserID     *uuid.UUID  `json:"user_id,omitempty"`
}

type RateFaqRequest struct {
	IsUpvote *bool `json:"is_upvote" validate:"required"`
}

type FaqUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// FaqDetails is the read view of a Faq.
type FaqDetails struct {
	ID        uuid.UUID        `json:"id"`
	Question  string           `json:"question"`
	Answer    string           `json:"answer"`
	Category  CategoryResponse `json:"category"`
	Tags      []TagResponse    `json:"tags"`
	User      FaqUser          `json:"user"`
	Rating    int              `json:"rating"`
	CreatedAt time.Time        `json:"created_at"`
}

type AskAIResponse struct {
	FaqID  uuid.UUID `json:"faq_id"`
	Answer string    `json:"answer"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
