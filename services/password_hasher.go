package services

import (
	"errors"

	"faq-assistant/models"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type bcryptHasher struct {
	salt string
	cost int
}

// NewBcryptHasher salts every password with salt before hashing.
func NewBcryptHasher(salt string) (PasswordHasher, error) {
	if salt == "" {
		return nil, models.ErrorConfiguration{Message: msgPasswordSaltMissing}
	}
	return &bcryptHasher{salt: salt, cost: bcrypt.DefaultCost}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password+h.salt), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", models.ErrorValidation{Message: "Password is too long."}
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+h.salt)) == nil
}
