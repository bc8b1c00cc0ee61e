package conversation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrInvalidName rejects a name that is not 2+ Latin/Cyrillic letters.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidPhone rejects a phone that is not +7 followed by 10 digits.
	ErrInvalidPhone = errors.New("invalid phone")
)

var (
	nameRe = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё]{2,}$`)
	// Deliberately narrow: Russian mobile numbers only. Callers needing
	// other regions must replace this rule, not bypass it.
	phoneRe = regexp.MustCompile(`^\+7\d{10}$`)
)

// ValidateName trims surrounding whitespace and accepts two or more letters
// drawn from the Latin or Cyrillic alphabets. Returns the trimmed name.
func ValidateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if !nameRe.MatchString(name) {
		return "", ErrInvalidName
	}
	return name, nil
}

// ValidatePhone strips spaces and hyphens and accepts "+7" followed by
// exactly 10 digits. Returns the normalized phone.
func ValidatePhone(raw string) (string, error) {
	phone := strings.TrimSpace(raw)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	if !phoneRe.MatchString(phone) {
		return "", ErrInvalidPhone
	}
	return phone, nil
}
