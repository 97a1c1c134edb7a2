package services

import "faq-assistant/models"

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func toCategoryResponse(c models.Category) models.CategoryResponse {
	return models.CategoryResponse{ID: c.ID, Name: c.Name}
}

func toTagResponse(t models.Tag) models.TagResponse {
	return models.TagResponse{ID: t.ID, Name: t.Name}
}

func toUserResponse(u models.User) models.UserResponse {
	return models.UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

// toFaqDetails renders a faq loaded with its relations. Deleted tags and
// deleted links are left out and the rating is derived from active votes.
func toFaqDetails(f models.Faq) models.FaqDetails {
	details := models.FaqDetails{
		ID:        f.ID,
		Question:  f.Question,
		Answer:    f.Answer,
		Tags:      []models.TagResponse{},
		Rating:    AggregateRating(f.Ratings),
		CreatedAt: f.CreatedAt,
	}
	if f.Category != nil {
		details.Category = toCategoryResponse(*f.Category)
	} else {
		details.Category.ID = f.CategoryID
	}
	if f.User != nil {
		details.User = models.FaqUser{ID: f.User.ID, Username: f.User.Username}
	} else {
		details.User.ID = f.UserID
	}
	for _, ft := range f.Tags {
		if ft.IsDeleted || ft.Tag == nil || ft.Tag.IsDeleted {
			continue
		}
		details.Tags = append(details.Tags, toTagResponse(*ft.Tag))
	}
	return details
}
