package response

import (
	"time"

	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ReservationResponse struct {
	ID                uuid.UUID        `json:"id"`
	ReservationNumber string           `json:"reservationNumber"`
	ClientName        string           `json:"clientName"`
	TravelDate        *time.Time       `json:"travelDate,omitempty"`
	PaymentDate       *time.Time       `json:"paymentDate,omitempty"`
	Observation       *string          `json:"observation,omitempty"`
	QuotaMonth        *string          `json:"quotaMonth,omitempty"`
	QuotaAmount       *decimal.Decimal `json:"quotaAmount,omitempty"`
	QuotaBalance      *decimal.Decimal `json:"quotaBalance,omitempty"`
	AgencyName        *string          `json:"agencyName,omitempty"`
	AgencyEmail       *string          `json:"agencyEmail,omitempty"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

type AgencyCountResponse struct {
	AgencyEmail *string `json:"agencyEmail"`
	Total       int64   `json:"total"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationRMs(rms []*readmodel.ReservationRM) []*ReservationResponse {
	result := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromReservationRM(rm)
	}
	return result
}

func FromAgencyCountRMs(rms []*readmodel.AgencyCountRM) []*AgencyCountResponse {
	result := make([]*AgencyCountResponse, len(rms))
	for i, rm := range rms {
		var resp AgencyCountResponse
		_ = copier.Copy(&resp, rm)
		result[i] = &resp
	}
	return result
}
