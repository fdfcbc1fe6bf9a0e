package agency

import (
	"errors"
	"strings"
	"time"

	"onvacation-backend/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("agency name cannot be empty")
	ErrEmptyEmail = errors.New("agency email cannot be empty")
)

// Agency is a travel-agency partner. Reservations reference it only by
// denormalized name/email, never by id, so deleting or deactivating an
// agency never invalidates imported reservations.
type Agency struct {
	id            uuid.UUID
	name          string
	email         string
	contactPerson *string
	phone         *string
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewAgency(clk clock.Clock, name, email string, contactPerson, phone *string) (*Agency, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	now := clk.Now()
	return &Agency{
		id:            uuid.New(),
		name:          name,
		email:         email,
		contactPerson: contactPerson,
		phone:         phone,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructAgency(
	id uuid.UUID,
	name, email string,
	contactPerson, phone *string,
	active bool,
	createdAt, updatedAt time.Time,
) *Agency {
	return &Agency{
		id:            id,
		name:          name,
		email:         email,
		contactPerson: contactPerson,
		phone:         phone,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update replaces the mutable fields and refreshes updatedAt.
// id and createdAt are never touched.
func (a *Agency) Update(name, email string, contactPerson, phone *string, active bool, now time.Time) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return ErrEmptyName
	}
	if email == "" {
		return ErrEmptyEmail
	}

	a.name = name
	a.email = email
	a.contactPerson = contactPerson
	a.phone = phone
	a.active = active
	a.updatedAt = now
	return nil
}

func (a *Agency) Deactivate(now time.Time) {
	a.active = false
	a.updatedAt = now
}

func (a *Agency) Activate(now time.Time) {
	a.active = true
	a.updatedAt = now
}

func (a *Agency) ID() uuid.UUID          { return a.id }
func (a *Agency) Name() string           { return a.name }
func (a *Agency) Email() string          { return a.email }
func (a *Agency) ContactPerson() *string { return a.contactPerson }
func (a *Agency) Phone() *string         { return a.phone }
func (a *Agency) IsActive() bool         { return a.active }
func (a *Agency) CreatedAt() time.Time   { return a.createdAt }
func (a *Agency) UpdatedAt() time.Time   { return a.updatedAt }
