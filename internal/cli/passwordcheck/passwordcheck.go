// Package passwordcheck scores password strength for registration prompts.
package passwordcheck

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Strength is a password strength score from 0 (very weak) to 4 (strong).
type Strength int

const (
	VeryWeak Strength = iota
	Weak
	Fair
	Good
	Strong
)

func (s Strength) String() string {
	switch s {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Fair:
		return "fair"
	case Good:
		return "good"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// commonPasswords are always scored VeryWeak regardless of composition.
var commonPasswords = map[string]bool{
	"password":   true,
	"contraseña": true,
	"123456":     true,
	"12345678":   true,
	"123456789":  true,
	"qwerty":     true,
	"abc123":     true,
	"111111":     true,
	"letmein":    true,
	"iloveyou":   true,
	"admin":      true,
}

// Score rates a password by length and character variety. Anything shorter
// than 8 characters or on the common-password list is VeryWeak. Length is
// counted in runes so accented characters weigh the same as ASCII ones.
func Score(password string) Strength {
	if utf8.RuneCountInString(password) < 8 || commonPasswords[strings.ToLower(password)] {
		return VeryWeak
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	score := 0
	if hasLower && hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSymbol {
		score++
	}
	if utf8.RuneCountInString(password) >= 12 {
		score++
	}

	return Strength(score)
}
