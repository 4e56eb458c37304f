// Package phone normalizes raw phone numbers into the bare digit form
// expected by the provider registry lookup.
package phone

import (
	"errors"
	"strings"
)

var (
	ErrEmpty     = errors.New("phone number is required")
	ErrNotDigits = errors.New("phone must contain only digits")
	ErrLength    = errors.New("phone length must be between 9 and 15 digits")
)

// Normalize strips formatting characters and validates the remaining digits.
func Normalize(raw string) (string, error) {
	p := strings.Map(func(r rune) rune {
		switch r {
		case '+', '-', ' ', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if p == "" {
		return "", ErrEmpty
	}

	for _, r := range p {
		if r < '0' || r > '9' {
			return "", ErrNotDigits
		}
	}

	if len(p) < 9 || len(p) > 15 {
		return "", ErrLength
	}

	return p, nil
}
