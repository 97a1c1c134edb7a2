package services

import (
	"time"

	"faq-assistant/models"

	"github.com/google/uuid"
)

// TagChanges is the mutation set that brings a faq's active tags to a target.
// Detached and Reactivated point into the slice passed to ReconcileFaqTags.
type TagChanges struct {
	Detached    []*models.FaqTag
	Reactivated []*models.FaqTag
	Added       []models.FaqTag
}

func (c TagChanges) Empty() bool {
	return len(c.Detached) == 0 && len(c.Reactivated) == 0 && len(c.Added) == 0
}

// Updated returns the existing rows whose state changed.
func (c TagChanges) Updated() []*models.FaqTag {
	out := make([]*models.FaqTag, 0, len(c.Detached)+len(c.Reactivated))
	out = append(out, c.Detached...)
	return append(out, c.Reactivated...)
}

// ReconcileFaqTags makes the active tag set of current equal to target.
//
// Each distinct tag id is handled once: active rows outside target are
// detached, a tag in target with no active row reuses its earliest detached
// row, and only tags with no row at all get a new association. Duplicate
// active rows for one tag are collapsed to the first one.
func ReconcileFaqTags(faqID uuid.UUID, current []models.FaqTag, target []uuid.UUID, now time.Time) TagChanges {
	incoming := make(map[uuid.UUID]struct{}, len(target))
	ordered := make([]uuid.UUID, 0, len(target))
	for _, id := range target {
		if _, seen := incoming[id]; seen {
			continue
		}
		incoming[id] = struct{}{}
		ordered = append(ordered, id)
	}

	var changes TagChanges
	active := make(map[uuid.UUID]bool, len(current))
	inactive := make(map[uuid.UUID]*models.FaqTag)

	for i := range current {
		ft := &current[i]
		if ft.IsDeleted {
			if prev, ok := inactive[ft.TagID]; !ok || ft.CreatedAt.Before(prev.CreatedAt) {
				inactive[ft.TagID] = ft
			}
			continue
		}
		if _, wanted := incoming[ft.TagID]; !wanted || active[ft.TagID] {
			ft.SoftDelete(now)
			changes.Detached = append(changes.Detached, ft)
			continue
		}
		active[ft.TagID] = true
	}

	for _, id := range ordered {
		if active[id] {
			continue
		}
		if ft, ok := inactive[id]; ok {
			ft.Restore(now)
			changes.Reactivated = append(changes.Reactivated, ft)
			continue
		}
		changes.Added = append(changes.Added, models.FaqTag{
			EntityBase: models.NewEntityBase(now),
			FaqID:      faqID,
			TagID:      id,
		})
	}

	return changes
}

// DetachAllTags soft-deletes every active association.
func DetachAllTags(current []models.FaqTag, now time.Time) []*models.FaqTag {
	return ReconcileFaqTags(uuid.Nil, current, nil, now).Detached
}
