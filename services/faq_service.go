package services

import (
	"context"
	"log/slog"
	"time"

	"faq-assistant/models"
	"faq-assistant/repositories"

	"github.com/google/uuid"
)

type FaqService interface {
	Create(ctx context.Context, actor uuid.UUID, req models.CreateFaqRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateFaqRequest) (uuid.UUID, error)
	Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error)
	Rate(ctx context.Context, actor, id uuid.UUID, upvote bool) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.FaqDetails, error)
	List(ctx context.Context, params models.FaqListParams) (models.PagedResult[models.FaqDetails], error)
}

type faqService struct {
	repos repositories.Repositories
	uow   repositories.UnitOfWork
	now   func() time.Time
}

func NewFaqService(repos repositories.Repositories, uow repositories.UnitOfWork) FaqService {
	return &faqService{repos: repos, uow: uow, now: utcNow}
}

func (s *faqService) Create(ctx context.Context, actor uuid.UUID, req models.CreateFaqRequest) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}
	question, answer, err := faqText(req.Question, req.Answer)
	if err != nil {
		return uuid.Nil, err
	}

	now := s.now()
	faq := &models.Faq{
		EntityBase: models.NewEntityBase(now),
		Question:   question,
		Answer:     answer,
		UserID:     actor,
		CategoryID: req.CategoryID,
	}

	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		if err := checkCategory(ctx, repos, req.CategoryID); err != nil {
			return err
		}
		tagIDs := distinct(req.TagIDs)
		if err := checkTags(ctx, repos, tagIDs); err != nil {
			return err
		}
		if err := repos.Faqs.Create(ctx, faq); err != nil {
			return err
		}
		return repos.Faqs.AddTags(ctx, ReconcileFaqTags(faq.ID, nil, tagIDs, now).Added)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("faq created", "faq_id", faq.ID, "user_id", actor)
	return faq.ID, nil
}

// Update replaces the faq content and reconciles its tag links. Only the
// author may update and the author cannot be changed.
func (s *faqService) Update(ctx context.Context, actor, id uuid.UUID, req models.UpdateFaqRequest) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}
	if req.UserID != nil {
		if err := requireOwner(actor, *req.UserID, msgFaqForbidden); err != nil {
			return uuid.Nil, err
		}
	}
	question, answer, err := faqText(req.Question, req.Answer)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.uow.Do(ctx, func(repos repositories.Repositories) error {
		faq, err := repos.Faqs.GetWithTags(ctx, id)
		if err := ensureActive(faq, err, msgFaqNotFound); err != nil {
			return err
		}
		if err := requireOwner(actor, faq.UserID, msgFaqForbidden); err != nil {
			return err
		}
		if faq.CategoryID != req.CategoryID {
			if err := checkCategory(ctx, repos, req.CategoryID); err != nil {
				return err
			}
		}

		target := distinct(req.TagIDs)
		if err := checkTags(ctx, repos, newTagIDs(faq.ActiveTagIDs(), target)); err != nil {
			return err
		}

		now := s.now()
		changes := ReconcileFaqTags(faq.ID, faq.Tags, target, now)

		faq.Question = question
		faq.Answer = answer
		faq.CategoryID = req.CategoryID
		faq.Touch(now)
		if err := repos.Faqs.Update(ctx, faq); err != nil {
			return err
		}
		// Detach before insert so a partial unique index never sees two active links.
		if err := repos.Faqs.UpdateTags(ctx, changes.Updated()); err != nil {
			return err
		}
		if err := repos.Faqs.AddTags(ctx, changes.Added); err != nil {
			return err
		}

		slog.Debug("faq tags reconciled", "faq_id", faq.ID,
			"detached", len(changes.Detached),
			"reactivated", len(changes.Reactivated),
			"added", len(changes.Added))
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Delete hides the faq and detaches its active tag links. Ratings are kept.
func (s *faqService) Delete(ctx context.Context, actor, id uuid.UUID) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}

	err := s.uow.Do(ctx, func(repos repositories.Repositories) error {
		faq, err := repos.Faqs.GetWithTags(ctx, id)
		if err := ensureActive(faq, err, msgFaqNotFound); err != nil {
			return err
		}
		if err := requireOwner(actor, faq.UserID, msgFaqForbidden); err != nil {
			return err
		}

		now := s.now()
		detached := DetachAllTags(faq.Tags, now)
		faq.SoftDelete(now)
		if err := repos.Faqs.Update(ctx, faq); err != nil {
			return err
		}
		return repos.Faqs.UpdateTags(ctx, detached)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("faq deleted", "faq_id", id, "user_id", actor)
	return id, nil
}

// Rate records the caller's vote. Repeating the current vote is rejected and
// the opposite vote flips the existing rating in place.
func (s *faqService) Rate(ctx context.Context, actor, id uuid.UUID, upvote bool) (uuid.UUID, error) {
	if err := requireActor(actor); err != nil {
		return uuid.Nil, err
	}

	var decision RatingDecision
	err := s.uow.Do(ctx, func(repos repositories.Repositories) error {
		faq, err := repos.Faqs.GetWithRatings(ctx, id)
		if err := ensureActive(faq, err, msgFaqNotFound); err != nil {
			return err
		}

		decision = ToggleRating(faq.ID, actor, faq.Ratings, upvote, s.now())
		switch decision.Action {
		case RatingUnchanged:
			return conflictf(msgRatingAlreadyExists)
		case RatingFlipped:
			return repos.Ratings.Update(ctx, decision.Rating)
		default:
			return conflictOnDuplicate(repos.Ratings.Create(ctx, decision.Rating), msgRatingAlreadyExists)
		}
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("faq rated", "faq_id", id, "user_id", actor, "action", decision.Action.String(), "upvote", upvote)
	return decision.Rating.ID, nil
}

func (s *faqService) GetByID(ctx context.Context, id uuid.UUID) (*models.FaqDetails, error) {
	faq, err := s.repos.Faqs.GetDetails(ctx, id)
	if err := ensureActive(faq, err, msgFaqNotFound); err != nil {
		return nil, err
	}
	details := toFaqDetails(*faq)
	return &details, nil
}

func (s *faqService) List(ctx context.Context, params models.FaqListParams) (models.PagedResult[models.FaqDetails], error) {
	params.PageParams = params.PageParams.Normalize()
	faqs, total, err := s.repos.Faqs.ListDetails(ctx, params)
	if err != nil {
		return models.PagedResult[models.FaqDetails]{}, err
	}
	return models.NewPagedResult(mapSlice(faqs, toFaqDetails), total, params.PageParams), nil
}

func faqText(question, answer string) (string, string, error) {
	q, err := requireText(question, msgQuestionEmpty)
	if err != nil {
		return "", "", err
	}
	a, err := requireText(answer, msgAnswerEmpty)
	if err != nil {
		return "", "", err
	}
	return q, a, nil
}

func checkCategory(ctx context.Context, repos repositories.Repositories, id uuid.UUID) error {
	category, err := repos.Categories.GetByID(ctx, id)
	return ensureActive(category, err, msgCategoryNotFound)
}

// checkTags fails unless every id names a non-deleted tag.
func checkTags(ctx context.Context, repos repositories.Repositories, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	tags, err := repos.Tags.GetActiveByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(tags) != len(ids) {
		return models.ErrorNotFound{Message: msgTagsNotFound}
	}
	return nil
}

// newTagIDs returns the ids in target that are not already active.
func newTagIDs(active, target []uuid.UUID) []uuid.UUID {
	current := make(map[uuid.UUID]struct{}, len(active))
	for _, id := range active {
		current[id] = struct{}{}
	}
	var out []uuid.UUID
	for _, id := range target {
		if _, ok := current[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
