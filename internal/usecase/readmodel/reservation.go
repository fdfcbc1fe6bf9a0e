package readmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationRM struct {
	ID                uuid.UUID        `json:"id"`
	ReservationNumber string           `json:"reservation_number"`
	ClientName        string           `json:"client_name"`
	TravelDate        *time.Time       `json:"travel_date,omitempty"`
	PaymentDate       *time.Time       `json:"payment_date,omitempty"`
	Observation       *string          `json:"observation,omitempty"`
	QuotaMonth        *string          `json:"quota_month,omitempty"`
	QuotaAmount       *decimal.Decimal `json:"quota_amount,omitempty"`
	QuotaBalance      *decimal.Decimal `json:"quota_balance,omitempty"`
	AgencyName        *string          `json:"agency_name,omitempty"`
	AgencyEmail       *string          `json:"agency_email,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// AgencyCountRM is one row of the reservations-per-agency report.
// AgencyEmail is nil for the group of reservations without an agency email.
type AgencyCountRM struct {
	AgencyEmail *string `json:"agency_email"`
	Total       int64   `json:"total"`
}
