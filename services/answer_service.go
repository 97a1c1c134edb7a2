package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"faq-assistant/config"
	"faq-assistant/models"
	"faq-assistant/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// AnswerGenerator produces an answer for a question.
type AnswerGenerator interface {
	Answer(ctx context.Context, question string) (string, error)
}

type AnswerService interface {
	AskAI(ctx context.Context, faqID uuid.UUID) (*models.AskAIResponse, error)
}

type answerService struct {
	repos     repositories.Repositories
	generator AnswerGenerator
	cache     *answerCache
	group     singleflight.Group
	limiter   *rate.Limiter
}

func NewAnswerService(repos repositories.Repositories, generator AnswerGenerator, cfg config.AIConfig) AnswerService {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &answerService{
		repos:     repos,
		generator: generator,
		cache:     newAnswerCache(cfg.CacheTTL, time.Now),
		limiter:   rate.NewLimiter(limit, burst),
	}
}

// AskAI answers the question of an active faq. Answers are cached per faq
// and question, and concurrent requests for one faq share a single call.
func (s *answerService) AskAI(ctx context.Context, faqID uuid.UUID) (*models.AskAIResponse, error) {
	faq, err := s.repos.Faqs.GetByID(ctx, faqID)
	if err := ensureActive(faq, err, msgFaqNotFound); err != nil {
		return nil, err
	}

	if answer, ok := s.cache.get(faqID, faq.Question); ok {
		return &models.AskAIResponse{FaqID: faqID, Answer: answer}, nil
	}

	v, err, shared := s.group.Do(faqID.String(), func() (any, error) {
		if answer, ok := s.cache.get(faqID, faq.Question); ok {
			return answer, nil
		}
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, models.ErrorDependency{Message: msgAIUnavailable, Err: err}
		}
		answer, err := s.generator.Answer(ctx, faq.Question)
		if err != nil {
			var cfgErr models.ErrorConfiguration
			if errors.As(err, &cfgErr) {
				return nil, cfgErr
			}
			slog.Warn("ai answer failed", "faq_id", faqID, "error", err)
			return nil, models.ErrorDependency{Message: msgAIUnavailable, Err: err}
		}
		s.cache.set(faqID, faq.Question, answer)
		return answer, nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("ai answer served", "faq_id", faqID, "shared", shared)
	return &models.AskAIResponse{FaqID: faqID, Answer: v.(string)}, nil
}

type cachedAnswer struct {
	question  string
	answer    string
	expiresAt time.Time
}

// answerCache keeps answers for ttl. An entry is only valid for the question
// it was generated for, so editing a faq invalidates it.
type answerCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]cachedAnswer
}

func newAnswerCache(ttl time.Duration, now func() time.Time) *answerCache {
	return &answerCache{ttl: ttl, now: now, entries: make(map[uuid.UUID]cachedAnswer)}
}

func (c *answerCache) get(faqID uuid.UUID, question string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[faqID]
	if !ok {
		return "", false
	}
	if e.question != question || !c.now().Before(e.expiresAt) {
		delete(c.entries, faqID)
		return "", false
	}
	return e.answer, true
}

func (c *answerCache) set(faqID uuid.UUID, question, answer string) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[faqID] = cachedAnswer{question: question, answer: answer, expiresAt: c.now().Add(c.ttl)}
}
