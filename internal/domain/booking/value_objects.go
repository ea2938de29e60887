package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyClientName = errors.New("client name cannot be empty")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidEmail    = errors.New("invalid email address")
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{9,13}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Client is the identity supplied on the booking form.
type Client struct {
	name  string
	phone string
	email string
}

func NewClient(name, phone, email string) (Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Client{}, ErrEmptyClientName
	}

	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return Client{}, ErrInvalidPhone
	}

	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return Client{}, ErrInvalidEmail
	}

	return Client{name: name, phone: phone, email: email}, nil
}

func (c Client) Name() string  { return c.name }
func (c Client) Phone() string { return c.phone }
func (c Client) Email() string { return c.email }
