package reservation

import (
	"errors"
	"strings"
	"time"

	"onvacation-backend/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyReservationNumber = errors.New("reservation number cannot be empty")
	ErrEmptyClientName        = errors.New("client name cannot be empty")
)

// Reservation is a travel booking with one visible installment (quota).
// reservationNumber is deliberately not unique: the same sheet may be
// imported more than once.
type Reservation struct {
	id                uuid.UUID
	reservationNumber string
	clientName        string
	travelDate        *time.Time
	paymentDate       *time.Time
	observation       *string
	quota             Quota
	agency            AgencyRef
	createdAt         time.Time
	updatedAt         time.Time
}

func NewReservation(
	clk clock.Clock,
	reservationNumber, clientName string,
	travelDate, paymentDate *time.Time,
	observation *string,
	quota Quota,
	agency AgencyRef,
) (*Reservation, error) {
	reservationNumber = strings.TrimSpace(reservationNumber)
	clientName = strings.TrimSpace(clientName)
	if reservationNumber == "" {
		return nil, ErrEmptyReservationNumber
	}
	if clientName == "" {
		return nil, ErrEmptyClientName
	}

	now := clk.Now()
	return &Reservation{
		id:                uuid.New(),
		reservationNumber: reservationNumber,
		clientName:        clientName,
		travelDate:        travelDate,
		paymentDate:       paymentDate,
		observation:       observation,
		quota:             quota,
		agency:            agency,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	reservationNumber, clientName string,
	travelDate, paymentDate *time.Time,
	observation *string,
	quota Quota,
	agency AgencyRef,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		reservationNumber: reservationNumber,
		clientName:        clientName,
		travelDate:        travelDate,
		paymentDate:       paymentDate,
		observation:       observation,
		quota:             quota,
		agency:            agency,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Update replaces the mutable fields and refreshes updatedAt.
// id and createdAt are never touched.
func (r *Reservation) Update(
	reservationNumber, clientName string,
	travelDate, paymentDate *time.Time,
	observation *string,
	quota Quota,
	agency AgencyRef,
	now time.Time,
) error {
	reservationNumber = strings.TrimSpace(reservationNumber)
	clientName = strings.TrimSpace(clientName)
	if reservationNumber == "" {
		return ErrEmptyReservationNumber
	}
	if clientName == "" {
		return ErrEmptyClientName
	}

	r.reservationNumber = reservationNumber
	r.clientName = clientName
	r.travelDate = travelDate
	r.paymentDate = paymentDate
	r.observation = observation
	r.quota = quota
	r.agency = agency
	r.updatedAt = now
	return nil
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) ReservationNumber() string { return r.reservationNumber }
func (r *Reservation) ClientName() string        { return r.clientName }
func (r *Reservation) TravelDate() *time.Time    { return r.travelDate }
func (r *Reservation) PaymentDate() *time.Time   { return r.paymentDate }
func (r *Reservation) Observation() *string      { return r.observation }
func (r *Reservation) Quota() Quota              { return r.quota }
func (r *Reservation) Agency() AgencyRef         { return r.agency }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
