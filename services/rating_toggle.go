package services

import (
	"time"

	"faq-assistant/models"

	"github.com/google/uuid"
)

type RatingAction int

const (
	RatingCreated RatingAction = iota + 1
	RatingFlipped
	RatingUnchanged
)

func (a RatingAction) String() string {
	switch a {
	case RatingCreated:
		return "created"
	case RatingFlipped:
		return "flipped"
	case RatingUnchanged:
		return "unchanged"
	}
	return "unknown"
}

type RatingDecision struct {
	Action RatingAction
	Rating *models.Rating
}

// ToggleRating decides what a vote by user on a faq does given every rating
// row of that faq. Deleted rows are ignored. For RatingFlipped the returned
// Rating points into ratings and has already been mutated; for RatingCreated
// it is a new row the caller must insert.
func ToggleRating(faqID, userID uuid.UUID, ratings []models.Rating, upvote bool, now time.Time) RatingDecision {
	for i := range ratings {
		r := &ratings[i]
		if r.IsDeleted || r.UserID != userID {
			continue
		}
		if r.IsUpvote == upvote {
			return RatingDecision{Action: RatingUnchanged, Rating: r}
		}
		r.IsUpvote = upvote
		r.Touch(now)
		return RatingDecision{Action: RatingFlipped, Rating: r}
	}

	return RatingDecision{
		Action: RatingCreated,
		Rating: &models.Rating{
			EntityBase: models.NewEntityBase(now),
			FaqID:      faqID,
			UserID:     userID,
			IsUpvote:   upvote,
		},
	}
}

// AggregateRating is the signed sum of active votes.
func AggregateRating(ratings []models.Rating) int {
	total := 0
	for _, r := range ratings {
		if r.IsDeleted {
			continue
		}
		if r.IsUpvote {
			total++
		} else {
			total--
		}
	}
	return total
}
