package conversation

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		err  error
	}{
		{"cyrillic", "Иван", "Иван", nil},
		{"latin", "John", "John", nil},
		{"with yo", "Пётр", "Пётр", nil},
		{"surrounding whitespace", "  Анна\t", "Анна", nil},
		{"two letters", "Ян", "Ян", nil},
		{"single letter", "Я", "", ErrInvalidName},
		{"digits", "123", "", ErrInvalidName},
		{"mixed with digit", "Иван1", "", ErrInvalidName},
		{"inner space", "Иван Петров", "", ErrInvalidName},
		{"punctuation", "O'Neil", "", ErrInvalidName},
		{"empty", "", "", ErrInvalidName},
		{"whitespace only", "   ", "", ErrInvalidName},
		{"emoji", "Иван👍", "", ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.raw)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ValidateName(%q) err = %v, want %v", tt.raw, err, tt.err)
			}
			if got != tt.want {
				t.Fatalf("ValidateName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		err  error
	}{
		{"bare", "+79991234567", "+79991234567", nil},
		{"spaces and hyphens", "+7 999 123-45-67", "+79991234567", nil},
		{"surrounding whitespace", " +79991234567 ", "+79991234567", nil},
		{"too short", "+7999123456", "", ErrInvalidPhone},
		{"too long", "+799912345678", "", ErrInvalidPhone},
		{"no plus", "79991234567", "", ErrInvalidPhone},
		{"wrong country", "+19991234567", "", ErrInvalidPhone},
		{"eight prefix", "89991234567", "", ErrInvalidPhone},
		{"letters", "+7999abc4567", "", ErrInvalidPhone},
		{"empty", "", "", ErrInvalidPhone},
		{"parentheses", "+7(999)1234567", "", ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.raw)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ValidatePhone(%q) err = %v, want %v", tt.raw, err, tt.err)
			}
			if got != tt.want {
				t.Fatalf("ValidatePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
