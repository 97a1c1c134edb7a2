package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"faq-assistant/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type lifecycle interface {
	Active() bool
}

// requireActor fails when the caller could not be identified.
func requireActor(actor uuid.UUID) error {
	if actor == uuid.Nil {
		return models.ErrorUnauthorized{Message: msgNotAuthenticated}
	}
	return nil
}

// requireOwner fails closed unless the caller is the subject.
func requireOwner(actor, subject uuid.UUID, message string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if actor != subject {
		return models.ErrorForbidden{Message: message}
	}
	return nil
}

// ensureActive turns a lookup result into a not found error when the row is
// missing or soft-deleted. v is only inspected when err is nil.
func ensureActive(v lifecycle, err error, message string) error {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: message}
		}
		return err
	}
	if !v.Active() {
		return models.ErrorNotFound{Message: message}
	}
	return nil
}

// lookupMiss reports whether err means no row matched.
func lookupMiss(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// conflictOnDuplicate maps a storage level unique violation, the loser of a
// concurrent create or rename, to a conflict.
func conflictOnDuplicate(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflictf(format, args...)
	}
	return err
}

func requireText(value, message string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", models.ErrorValidation{Message: message}
	}
	return value, nil
}

func conflictf(format string, args ...any) error {
	return models.ErrorConflict{Message: fmt.Sprintf(format, args...)}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
