package handlers

import (
	"context"

	"faq-assistant/models"

	"github.com/google/uuid"
)

type mockAuthService struct {
	RegisterFunc    func(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc       func(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByIDFunc func(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return m.RegisterFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return m.LoginFunc(ctx, req)
}

func (m *mockAuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	return m.GetUserByIDFunc(ctx, id)
}

type mockTagService struct {
	CreateFunc  func(ctx context.Context, actor uuid.UUID, req models.CreateTagRequest) (uuid.UUID, error)
	UpdateFunc  func(ctx context.Context, actor, id uuid.UUID, req models.UpdateTagRequest) (uuid.UUID, error)
	DeleteFunc  func(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.TagResponse, error)
	GetAllFunc  func(ctx context.Context) ([]models.TagResponse, error)
	ListFunc    func(ctx context.Context, params models.PageParams) (models.PagedResult[models.TagResponse], error)
}

func (m *mockTagService) Create(ctx context.Context, actor uuid.UUID, req models.CreateTagRequest) (uuid.UUID, error) {
	return m.CreateFunc(ctx, actor, req)
}

func (m *mockTagService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateTagRequest) (uuid.UUID, error) {
	return m.UpdateFunc(ctx, actor, id, req)
}

func (m *mockTagService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	return m.DeleteFunc(ctx, actor, id)
}

func (m *mockTagService) GetByID(ctx context.Context, id uuid.UUID) (*models.TagResponse, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTagService) GetAll(ctx context.Context) ([]models.TagResponse, error) {
	return m.GetAllFunc(ctx)
}

func (m *mockTagService) List(ctx context.Context, params models.PageParams) (models.PagedResult[models.TagResponse], error) {
	return m.ListFunc(ctx, params)
}

type mockCategoryService struct {
	CreateFunc  func(ctx context.Context, actor uuid.UUID, req models.CreateCategoryRequest) (uuid.UUID, error)
	UpdateFunc  func(ctx context.Context, actor, id uuid.UUID, req models.UpdateCategoryRequest) (uuid.UUID, error)
	DeleteFunc  func(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.CategoryResponse, error)
	GetAllFunc  func(ctx context.Context) ([]models.CategoryResponse, error)
	ListFunc    func(ctx context.Context, params models.PageParams) (models.PagedResult[models.CategoryResponse], error)
}

func (m *mockCategoryService) Create(ctx context.Context, actor uuid.UUID, req models.CreateCategoryRequest) (uuid.UUID, error) {
	return m.CreateFunc(ctx, actor, req)
}

func (m *mockCategoryService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateCategoryRequest) (uuid.UUID, error) {
	return m.UpdateFunc(ctx, actor, id, req)
}

func (m *mockCategoryService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	return m.DeleteFunc(ctx, actor, id)
}

func (m *mockCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.CategoryResponse, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockCategoryService) GetAll(ctx context.Context) ([]models.CategoryResponse, error) {
	return m.GetAllFunc(ctx)
}

func (m *mockCategoryService) List(ctx context.Context, params models.PageParams) (models.PagedResult[models.CategoryResponse], error) {
	return m.ListFunc(ctx, params)
}

type mockUserService struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.UserResponse, error)
	ListFunc    func(ctx context.Context, params models.PageParams) (models.PagedResult[models.UserResponse], error)
	UpdateFunc  func(ctx context.Context, actor, id uuid.UUID, req models.UpdateUserRequest) (uuid.UUID, error)
	DeleteFunc  func(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockUserService) List(ctx context.Context, params models.PageParams) (models.PagedResult[models.UserResponse], error) {
	return m.ListFunc(ctx, params)
}

func (m *mockUserService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateUserRequest) (uuid.UUID, error) {
	return m.UpdateFunc(ctx, actor, id, req)
}

func (m *mockUserService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	return m.DeleteFunc(ctx, actor, id)
}

type mockFaqService struct {
	CreateFunc  func(ctx context.Context, actor uuid.UUID, req models.CreateFaqRequest) (uuid.UUID, error)
	UpdateFunc  func(ctx context.Context, actor, id uuid.UUID, req models.UpdateFaqRequest) (uuid.UUID, error)
	DeleteFunc  func(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
	RateFunc    func(ctx context.Context, actor, id uuid.UUID, upvote bool) (uuid.UUID, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.FaqDetails, error)
	ListFunc    func(ctx context.Context, params models.FaqListParams) (models.PagedResult[models.FaqDetails], error)
}

func (m *mockFaqService) Create(ctx context.Context, actor uuid.UUID, req models.CreateFaqRequest) (uuid.UUID, error) {
	return m.CreateFunc(ctx, actor, req)
}

func (m *mockFaqService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateFaqRequest) (uuid.UUID, error) {
	return m.UpdateFunc(ctx, actor, id, req)
}

func (m *mockFaqService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	return m.DeleteFunc(ctx, actor, id)
}

func (m *mockFaqService) Rate(ctx context.Context, actor, id uuid.UUID, upvote bool) (uuid.UUID, error) {
	return m.RateFunc(ctx, actor, id, upvote)
}

func (m *mockFaqService) GetByID(ctx context.Context, id uuid.UUID) (*models.FaqDetails, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockFaqService) List(ctx context.Context, params models.FaqListParams) (models.PagedResult[models.FaqDetails], error) {
	return m.ListFunc(ctx, params)
}

type mockAnswerService struct {
	AskAIFunc func(ctx context.Context, faqID uuid.UUID) (*models.AskAIResponse, error)
}

func (m *mockAnswerService) AskAI(ctx context.Context, faqID uuid.UUID) (*models.AskAIResponse, error) {
	return m.AskAIFunc(ctx, faqID)
}
