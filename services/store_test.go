package services

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync"

	"faq-assistant/models"
	"faq-assistant/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for postgres. It enforces the same
// partial unique indexes and lets memUnitOfWork roll back failed work.
type memStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]models.User
	categories map[uuid.UUID]models.Category
	tags       map[uuid.UUID]models.Tag
	faqs       map[uuid.UUID]models.Faq
	faqTags    map[uuid.UUID]models.FaqTag
	ratings    map[uuid.UUID]models.Rating
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uuid.UUID]models.User{},
		categories: map[uuid.UUID]models.Category{},
		tags:       map[uuid.UUID]models.Tag{},
		faqs:       map[uuid.UUID]models.Faq{},
		faqTags:    map[uuid.UUID]models.FaqTag{},
		ratings:    map[uuid.UUID]models.Rating{},
	}
}

func (s *memStore) repos() repositories.Repositories {
	return repositories.Repositories{
		Users:      memUsers{s},
		Categories: memCategories{s},
		Tags:       memTags{s},
		Faqs:       memFaqs{s},
		Ratings:    memRatings{s},
	}
}

type snapshot struct {
	users      map[uuid.UUID]models.User
	categories map[uuid.UUID]models.Category
	tags       map[uuid.UUID]models.Tag
	faqs       map[uuid.UUID]models.Faq
	faqTags    map[uuid.UUID]models.FaqTag
	ratings    map[uuid.UUID]models.Rating
}

func (s *memStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		users:      maps.Clone(s.users),
		categories: maps.Clone(s.categories),
		tags:       maps.Clone(s.tags),
		faqs:       maps.Clone(s.faqs),
		faqTags:    maps.Clone(s.faqTags),
		ratings:    maps.Clone(s.ratings),
	}
}

func (s *memStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.categories = snap.categories
	s.tags = snap.tags
	s.faqs = snap.faqs
	s.faqTags = snap.faqTags
	s.ratings = snap.ratings
}

func (s *memStore) activeFaqTags(faqID uuid.UUID) []models.FaqTag {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FaqTag
	for _, ft := range s.faqTags {
		if ft.FaqID == faqID && !ft.IsDeleted {
			out = append(out, ft)
		}
	}
	return out
}

func (s *memStore) faqTagRows(faqID uuid.UUID) []models.FaqTag {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FaqTag
	for _, ft := range s.faqTags {
		if ft.FaqID == faqID {
			out = append(out, ft)
		}
	}
	sortByCreated(out, func(ft models.FaqTag) models.EntityBase { return ft.EntityBase })
	return out
}

func (s *memStore) ratingRows(faqID uuid.UUID) []models.Rating {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Rating
	for _, r := range s.ratings {
		if r.FaqID == faqID {
			out = append(out, r)
		}
	}
	return out
}

// memUnitOfWork restores the store when fn or the simulated commit fails.
type memUnitOfWork struct {
	store     *memStore
	commitErr error
	calls     int
}

func (u *memUnitOfWork) Do(ctx context.Context, fn func(repos repositories.Repositories) error) error {
	u.calls++
	snap := u.store.snapshot()
	if err := fn(u.store.repos()); err != nil {
		u.store.restore(snap)
		return err
	}
	if u.commitErr != nil {
		u.store.restore(snap)
		return u.commitErr
	}
	return nil
}

func duplicated(index string) error {
	return fmt.Errorf("%w: %s", gorm.ErrDuplicatedKey, index)
}

func sortByCreated[T any](items []T, base func(T) models.EntityBase) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := base(items[i]), base(items[j])
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID.String() < b.ID.String()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

func pageOf[T any](items []T, params models.PageParams) ([]T, int64) {
	total := int64(len(items))
	start := params.Offset()
	if start >= len(items) {
		return []T{}, total
	}
	end := start + params.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

type memUsers struct{ s *memStore }

func (r memUsers) check(u *models.User) error {
	if u.IsDeleted {
		return nil
	}
	for id, other := range r.s.users {
		if id == u.ID || other.IsDeleted {
			continue
		}
		if other.Username == u.Username {
			return duplicated("idx_users_username_active")
		}
		if other.Email == u.Email {
			return duplicated("idx_users_email_active")
		}
	}
	return nil
}

func (r memUsers) Create(ctx context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(user); err != nil {
		return err
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r memUsers) Update(ctx context.Context, user *models.User) error {
	return r.Create(ctx, user)
}

func (r memUsers) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r memUsers) GetActiveByUsername(ctx context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if !u.IsDeleted && u.Username == username {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memUsers) FindActiveByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, u := range r.s.users {
		if !u.IsDeleted && (u.Username == username || u.Email == email) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r memUsers) List(ctx context.Context, params models.PageParams) ([]models.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.User
	for _, u := range r.s.users {
		if u.IsDeleted {
			continue
		}
		if params.Search != "" && !containsFold(u.Username, params.Search) && !containsFold(u.Email, params.Search) {
			continue
		}
		out = append(out, u)
	}
	sortByCreated(out, func(u models.User) models.EntityBase { return u.EntityBase })
	items, total := pageOf(out, params)
	return items, total, nil
}

type memCategories struct{ s *memStore }

func (r memCategories) Create(ctx context.Context, c *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !c.IsDeleted {
		for id, other := range r.s.categories {
			if id != c.ID && !other.IsDeleted && other.Name == c.Name {
				return duplicated("idx_categories_name_active")
			}
		}
	}
	r.s.categories[c.ID] = *c
	return nil
}

func (r memCategories) Update(ctx context.Context, c *models.Category) error {
	return r.Create(ctx, c)
}

func (r memCategories) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r memCategories) GetActiveByName(ctx context.Context, name string) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if !c.IsDeleted && c.Name == name {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memCategories) active(search string) []models.Category {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Category
	for _, c := range r.s.categories {
		if !c.IsDeleted && (search == "" || containsFold(c.Name, search)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r memCategories) GetAll(ctx context.Context) ([]models.Category, error) {
	return r.active(""), nil
}

func (r memCategories) List(ctx context.Context, params models.PageParams) ([]models.Category, int64, error) {
	items, total := pageOf(r.active(params.Search), params)
	return items, total, nil
}

type memTags struct{ s *memStore }

func (r memTags) Create(ctx context.Context, t *models.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !t.IsDeleted {
		for id, other := range r.s.tags {
			if id != t.ID && !other.IsDeleted && other.Name == t.Name {
				return duplicated("idx_tags_name_active")
			}
		}
	}
	r.s.tags[t.ID] = *t
	return nil
}

func (r memTags) Update(ctx context.Context, t *models.Tag) error {
	return r.Create(ctx, t)
}

func (r memTags) GetByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r memTags) GetActiveByName(ctx context.Context, name string) (*models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, t := range r.s.tags {
		if !t.IsDeleted && t.Name == name {
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memTags) GetActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Tag
	for _, id := range ids {
		if t, ok := r.s.tags[id]; ok && !t.IsDeleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r memTags) active(search string) []models.Tag {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Tag
	for _, t := range r.s.tags {
		if !t.IsDeleted && (search == "" || containsFold(t.Name, search)) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r memTags) GetAll(ctx context.Context) ([]models.Tag, error) {
	return r.active(""), nil
}

func (r memTags) List(ctx context.Context, params models.PageParams) ([]models.Tag, int64, error) {
	items, total := pageOf(r.active(params.Search), params)
	return items, total, nil
}

type memFaqs struct{ s *memStore }

func stripFaq(f models.Faq) models.Faq {
	f.User, f.Category, f.Tags, f.Ratings = nil, nil, nil, nil
	return f
}

func (r memFaqs) Create(ctx context.Context, faq *models.Faq) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.faqs[faq.ID] = stripFaq(*faq)
	return nil
}

func (r memFaqs) Update(ctx context.Context, faq *models.Faq) error {
	return r.Create(ctx, faq)
}

func (r memFaqs) GetByID(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.faqs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &f, nil
}

func (r memFaqs) GetWithTags(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	f, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Tags = r.s.faqTagRows(id)
	return f, nil
}

func (r memFaqs) GetWithRatings(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	f, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.Ratings = r.s.ratingRows(id)
	return f, nil
}

func (r memFaqs) saveTag(ft models.FaqTag) error {
	if !ft.IsDeleted {
		for id, other := range r.s.faqTags {
			if id != ft.ID && !other.IsDeleted && other.FaqID == ft.FaqID && other.TagID == ft.TagID {
				return duplicated("idx_faq_tags_pair_active")
			}
		}
	}
	ft.Tag = nil
	r.s.faqTags[ft.ID] = ft
	return nil
}

func (r memFaqs) AddTags(ctx context.Context, tags []models.FaqTag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ft := range tags {
		if _, exists := r.s.faqTags[ft.ID]; exists {
			return duplicated("faq_tags_pkey")
		}
		if err := r.saveTag(ft); err != nil {
			return err
		}
	}
	return nil
}

func (r memFaqs) UpdateTags(ctx context.Context, tags []*models.FaqTag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, ft := range tags {
		if err := r.saveTag(*ft); err != nil {
			return err
		}
	}
	return nil
}

func (r memFaqs) CountActiveByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, f := range r.s.faqs {
		if !f.IsDeleted && f.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

// details loads relations the way the gorm preloads do. Callers hold the lock.
func (r memFaqs) details(f models.Faq) models.Faq {
	if u, ok := r.s.users[f.UserID]; ok {
		f.User = &u
	}
	if c, ok := r.s.categories[f.CategoryID]; ok {
		f.Category = &c
	}
	f.Tags = nil
	for _, ft := range r.s.faqTags {
		if ft.FaqID != f.ID || ft.IsDeleted {
			continue
		}
		if t, ok := r.s.tags[ft.TagID]; ok {
			ft.Tag = &t
		}
		f.Tags = append(f.Tags, ft)
	}
	sortByCreated(f.Tags, func(ft models.FaqTag) models.EntityBase { return ft.EntityBase })
	f.Ratings = nil
	for _, rt := range r.s.ratings {
		if rt.FaqID == f.ID && !rt.IsDeleted {
			f.Ratings = append(f.Ratings, rt)
		}
	}
	return f
}

func (r memFaqs) GetDetails(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	f, ok := r.s.faqs[id]
	if !ok || f.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	d := r.details(f)
	return &d, nil
}

func (r memFaqs) matches(f models.Faq, params models.FaqListParams) bool {
	if f.IsDeleted {
		return false
	}
	if params.CategoryID != nil && f.CategoryID != *params.CategoryID {
		return false
	}
	if params.TagID != nil {
		found := false
		for _, ft := range f.Tags {
			if ft.TagID == *params.TagID {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if params.Search == "" {
		return true
	}
	if containsFold(f.Question, params.Search) || containsFold(f.Answer, params.Search) {
		return true
	}
	if f.Category != nil && containsFold(f.Category.Name, params.Search) {
		return true
	}
	for _, ft := range f.Tags {
		if ft.Tag != nil && !ft.Tag.IsDeleted && containsFold(ft.Tag.Name, params.Search) {
			return true
		}
	}
	return false
}

func (r memFaqs) ListDetails(ctx context.Context, params models.FaqListParams) ([]models.Faq, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Faq
	for _, f := range r.s.faqs {
		d := r.details(f)
		if r.matches(d, params) {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	items, total := pageOf(out, params.PageParams)
	return items, total, nil
}

type memRatings struct{ s *memStore }

func (r memRatings) Create(ctx context.Context, rating *models.Rating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !rating.IsDeleted {
		for id, other := range r.s.ratings {
			if id != rating.ID && !other.IsDeleted && other.FaqID == rating.FaqID && other.UserID == rating.UserID {
				return duplicated("idx_ratings_pair_active")
			}
		}
	}
	r.s.ratings[rating.ID] = *rating
	return nil
}

func (r memRatings) Update(ctx context.Context, rating *models.Rating) error {
	return r.Create(ctx, rating)
}
