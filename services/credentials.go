package services

import (
	"strings"
	"unicode/utf8"

	"faq-assistant/models"

	"gopkg.in/go-playground/validator.v9"
)

const (
	minPasswordLength = 6
	maxUsernameLength = 50
)

var fieldValidator = validator.New()

func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", models.ErrorValidation{Message: msgUsernameEmpty}
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return "", models.ErrorValidation{Message: msgUsernameTooLong}
	}
	return username, nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if err := fieldValidator.Var(email, "required,email"); err != nil {
		return "", models.ErrorValidation{Message: msgInvalidEmail}
	}
	return email, nil
}

func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return models.ErrorValidation{Message: msgPasswordTooShort}
	}
	return nil
}
