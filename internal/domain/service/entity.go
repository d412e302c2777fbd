package service

import (
	"errors"
	"time"

	"stable-booking-api/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errors.New("service name is required")
	ErrInvalidPrice    = errors.New("service price must be positive")
	ErrInvalidDuration = errors.New("invalid service duration")
	ErrInactive        = errors.New("service is inactive")
)

// Service is a horse-care service offered by the yard (grooming, clipping,
// schooling and so on). Pricing is free-form, unlike arena slots.
type Service struct {
	id              uuid.UUID
	name            string
	description     *string
	price           booking.Money
	durationMinutes int
	active          bool
	createdBy       *uuid.UUID
	createdAt       time.Time
}

// New parses the human duration string ("30m", "1hr", "1.5h", "90") and
// validates price and name.
func New(name string, description *string, pricePence int, duration string, createdBy uuid.UUID) (*Service, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if pricePence <= 0 {
		return nil, ErrInvalidPrice
	}
	minutes, err := ParseDurationMinutes(duration)
	if err != nil {
		return nil, err
	}

	price, err := booking.NewMoney(pricePence)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	by := createdBy
	return &Service{
		id:              uuid.New(),
		name:            name,
		description:     description,
		price:           price,
		durationMinutes: minutes,
		active:          true,
		createdBy:       &by,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name string,
	description *string,
	price booking.Money,
	durationMinutes int,
	active bool,
	createdBy *uuid.UUID,
	createdAt time.Time,
) *Service {
	return &Service{
		id:              id,
		name:            name,
		description:     description,
		price:           price,
		durationMinutes: durationMinutes,
		active:          active,
		createdBy:       createdBy,
		createdAt:       createdAt,
	}
}

func (s *Service) Rename(name string, description *string, pricePence int, duration string) error {
	if name == "" {
		return ErrNameRequired
	}
	if pricePence <= 0 {
		return ErrInvalidPrice
	}
	minutes, err := ParseDurationMinutes(duration)
	if err != nil {
		return err
	}
	price, err := booking.NewMoney(pricePence)
	if err != nil {
		return ErrInvalidPrice
	}

	s.name = name
	s.description = description
	s.price = price
	s.durationMinutes = minutes
	return nil
}

func (s *Service) SetActive(active bool) {
	s.active = active
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) Name() string          { return s.name }
func (s *Service) Description() *string  { return s.description }
func (s *Service) Price() booking.Money  { return s.price }
func (s *Service) DurationMinutes() int  { return s.durationMinutes }
func (s *Service) Active() bool          { return s.active }
func (s *Service) CreatedBy() *uuid.UUID { return s.createdBy }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }
