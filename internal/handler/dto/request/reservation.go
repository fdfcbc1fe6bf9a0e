package request

import (
	"onvacation-backend/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	ReservationNumber string           `json:"reservationNumber" binding:"required"`
	ClientName        string           `json:"clientName" binding:"required"`
	TravelDate        *DateOnly        `json:"travelDate,omitempty"`
	PaymentDate       *DateOnly        `json:"paymentDate,omitempty"`
	Observation       *string          `json:"observation,omitempty"`
	QuotaMonth        *string          `json:"quotaMonth,omitempty"`
	QuotaAmount       *decimal.Decimal `json:"quotaAmount,omitempty"`
	QuotaBalance      *decimal.Decimal `json:"quotaBalance,omitempty"`
	AgencyName        *string          `json:"agencyName,omitempty"`
	AgencyEmail       *string          `json:"agencyEmail,omitempty"`
}

func (r CreateReservationRequest) ToParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		ReservationNumber: r.ReservationNumber,
		ClientName:        r.ClientName,
		TravelDate:        r.TravelDate.TimePtr(),
		PaymentDate:       r.PaymentDate.TimePtr(),
		Observation:       r.Observation,
		QuotaMonth:        r.QuotaMonth,
		QuotaAmount:       r.QuotaAmount,
		QuotaBalance:      r.QuotaBalance,
		AgencyName:        r.AgencyName,
		AgencyEmail:       r.AgencyEmail,
	}
}

// UpdateReservationRequest patches: absent fields keep the stored value.
type UpdateReservationRequest struct {
	ReservationNumber *string          `json:"reservationNumber,omitempty"`
	ClientName        *string          `json:"clientName,omitempty"`
	TravelDate        *DateOnly        `json:"travelDate,omitempty"`
	PaymentDate       *DateOnly        `json:"paymentDate,omitempty"`
	Observation       *string          `json:"observation,omitempty"`
	QuotaMonth        *string          `json:"quotaMonth,omitempty"`
	QuotaAmount       *decimal.Decimal `json:"quotaAmount,omitempty"`
	QuotaBalance      *decimal.Decimal `json:"quotaBalance,omitempty"`
	AgencyName        *string          `json:"agencyName,omitempty"`
	AgencyEmail       *string          `json:"agencyEmail,omitempty"`
}

func (r UpdateReservationRequest) ToParams() usecase.UpdateReservationParams {
	return usecase.UpdateReservationParams{
		ReservationNumber: r.ReservationNumber,
		ClientName:        r.ClientName,
		TravelDate:        r.TravelDate.TimePtr(),
		PaymentDate:       r.PaymentDate.TimePtr(),
		Observation:       r.Observation,
		QuotaMonth:        r.QuotaMonth,
		QuotaAmount:       r.QuotaAmount,
		QuotaBalance:      r.QuotaBalance,
		AgencyName:        r.AgencyName,
		AgencyEmail:       r.AgencyEmail,
	}
}
