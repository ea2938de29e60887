package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceName   = errors.New("service name cannot be empty")
	ErrServiceNameTooLong = errors.New("service name is too long (max 255 characters)")
	ErrNegativeBasePrice  = errors.New("base price cannot be negative")
	ErrInvalidDuration    = errors.New("duration must be positive")
)

const MaxServiceNameLength = 255

// Service is a catalog entry. basePrice is the supplier-quoted cost in KSh;
// the client-facing price is derived through the pricing calculator.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	basePrice   int
	durationMin int
	category    string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(id uuid.UUID, name, description string, basePrice, durationMin int, category string, active bool) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return nil, ErrServiceNameTooLong
	}
	if basePrice < 0 {
		return nil, ErrNegativeBasePrice
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Service{
		id:          id,
		name:        name,
		description: description,
		basePrice:   basePrice,
		durationMin: durationMin,
		category:    category,
		active:      active,
	}, nil
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) BasePrice() int       { return s.basePrice }
func (s *Service) DurationMin() int     { return s.durationMin }
func (s *Service) Category() string     { return s.category }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
