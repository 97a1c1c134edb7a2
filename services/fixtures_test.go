package services

import (
	"context"
	"errors"
	"time"

	"faq-assistant/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// serviceSuite wires every service to one memStore.
type serviceSuite struct {
	suite.Suite
	ctx   context.Context
	store *memStore
	uow   *memUnitOfWork
	clock time.Time

	categories *categoryService
	tags       *tagService
	users      *userService
	faqs       *faqService
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	s.uow = &memUnitOfWork{store: s.store}
	s.clock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repos := s.store.repos()

	s.categories = NewCategoryService(repos, s.uow).(*categoryService)
	s.tags = NewTagService(repos, s.uow).(*tagService)
	s.users = NewUserService(repos, s.uow).(*userService)
	s.faqs = NewFaqService(repos, s.uow).(*faqService)
	s.categories.now = s.tick
	s.tags.now = s.tick
	s.users.now = s.tick
	s.faqs.now = s.tick
}

// tick advances the fake clock by a second per call.
func (s *serviceSuite) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *serviceSuite) seedUser(username string) uuid.UUID {
	u := models.User{
		EntityBase:   models.NewEntityBase(s.tick()),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
	s.Require().NoError(s.store.repos().Users.Create(s.ctx, &u))
	return u.ID
}

func (s *serviceSuite) seedCategory(actor uuid.UUID, name string) uuid.UUID {
	id, err := s.categories.Create(s.ctx, actor, models.CreateCategoryRequest{Name: name})
	s.Require().NoError(err)
	return id
}

func (s *serviceSuite) seedTag(actor uuid.UUID, name string) uuid.UUID {
	id, err := s.tags.Create(s.ctx, actor, models.CreateTagRequest{Name: name})
	s.Require().NoError(err)
	return id
}

func (s *serviceSuite) seedFaq(actor, categoryID uuid.UUID, question string, tagIDs ...uuid.UUID) uuid.UUID {
	id, err := s.faqs.Create(s.ctx, actor, models.CreateFaqRequest{
		Question:   question,
		Answer:     "answer to " + question,
		CategoryID: categoryID,
		TagIDs:     tagIDs,
	})
	s.Require().NoError(err)
	return id
}

func (s *serviceSuite) requireErrorAs(err error, target any) {
	s.Require().Error(err)
	s.Require().True(errors.As(err, target), "unexpected error %T: %v", err, err)
}
