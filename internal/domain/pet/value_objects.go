package pet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidStatus  = errors.New("invalid pet status")
	ErrEmptyName      = errors.New("pet name is required")
	ErrNameTooLong    = errors.New("pet name exceeds maximum length")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrNotAvailable   = errors.New("pet is no longer available")
)

const MaxNameLength = 100

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// ParseMoney parses a decimal string such as "50", "50.5" or "50.00".
// At most two fractional digits are accepted.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, ErrNegativeAmount
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac, hasFrac := strings.Cut(s, ".")
	if !isDigits(whole, true) || (hasFrac && !isDigits(frac, false)) || len(frac) > 2 {
		return Money{}, ErrInvalidAmount
	}
	if whole == "" {
		if !hasFrac {
			return Money{}, ErrInvalidAmount
		}
		whole = "0"
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > (1<<62)/100 {
		return Money{}, ErrInvalidAmount
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(units*100 + cents)
}

// isDigits reports whether s is ASCII digits only.
func isDigits(s string, allowEmpty bool) bool {
	if s == "" {
		return allowEmpty
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseMoneyOr keeps fallback when s is not a valid non-negative amount.
func ParseMoneyOr(s string, fallback Money) Money {
	m, err := ParseMoney(s)
	if err != nil {
		return fallback
	}
	return m
}

// ParseAgeOr keeps fallback when s is not a valid non-negative integer.
func ParseAgeOr(s string, fallback int) int {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || age < 0 {
		return fallback
	}
	return age
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
