package account

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidKind     = errors.New("invalid account kind")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrEmptyName       = errors.New("name is required")
	ErrNameTooLong     = errors.New("name exceeds maximum length")
	ErrPhoneTooLong    = errors.New("phone exceeds maximum length")
)

const (
	MinPasswordLength = 8
	MaxNameLength     = 100
	MaxPhoneLength    = 20
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail normalizes to lower case so uniqueness is case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Profile is the contact information collected at registration.
type Profile struct {
	name    string
	phone   string
	address string
}

func NewProfile(name, phone, address string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return Profile{}, ErrNameTooLong
	}
	phone = strings.TrimSpace(phone)
	if len(phone) > MaxPhoneLength {
		return Profile{}, ErrPhoneTooLong
	}
	return Profile{
		name:    name,
		phone:   phone,
		address: strings.TrimSpace(address),
	}, nil
}

func (p Profile) Name() string    { return p.name }
func (p Profile) Phone() string   { return p.phone }
func (p Profile) Address() string { return p.address }
