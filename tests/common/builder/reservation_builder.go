//go:build unit || e2e

package builder

import (
	"time"

	domreservation "onvacation-backend/internal/domain/reservation"
	reqdto "onvacation-backend/internal/handler/dto/request"
	"onvacation-backend/internal/pkg/clock"
	"onvacation-backend/internal/usecase"
	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationBuilder struct {
	ReservationNumber string
	ClientName        string
	TravelDate        *time.Time
	PaymentDate       *time.Time
	Observation       *string
	QuotaMonth        *string
	QuotaAmount       *decimal.Decimal
	QuotaBalance      *decimal.Decimal
	AgencyName        *string
	AgencyEmail       *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	travel := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	payment := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	observation := "Family trip"
	month := "JUNIO"
	amount := decimal.RequireFromString("1500.00")
	balance := decimal.RequireFromString("500.00")
	agencyName := "Viajes Andinos"
	agencyEmail := "contacto@viajesandinos.co"

	return &ReservationBuilder{
		ReservationNumber: "RES-1001",
		ClientName:        "Maria Gomez",
		TravelDate:        &travel,
		PaymentDate:       &payment,
		Observation:       &observation,
		QuotaMonth:        &month,
		QuotaAmount:       &amount,
		QuotaBalance:      &balance,
		AgencyName:        &agencyName,
		AgencyEmail:       &agencyEmail,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	quota, err := domreservation.NewQuota(r.QuotaMonth, r.QuotaAmount, r.QuotaBalance)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(
		clock.NewMockClock(r.CreatedAt),
		r.ReservationNumber,
		r.ClientName,
		r.TravelDate,
		r.PaymentDate,
		r.Observation,
		quota,
		domreservation.NewAgencyRef(r.AgencyName, r.AgencyEmail),
	)
}

func (r *ReservationBuilder) BuildRM() *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:                uuid.New(),
		ReservationNumber: r.ReservationNumber,
		ClientName:        r.ClientName,
		TravelDate:        r.TravelDate,
		PaymentDate:       r.PaymentDate,
		Observation:       r.Observation,
		QuotaMonth:        r.QuotaMonth,
		QuotaAmount:       r.QuotaAmount,
		QuotaBalance:      r.QuotaBalance,
		AgencyName:        r.AgencyName,
		AgencyEmail:       r.AgencyEmail,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildCreateParams() usecase.CreateReservationParams {
	return usecase.CreateReservationParams{
		ReservationNumber: r.ReservationNumber,
		ClientName:        r.ClientName,
		TravelDate:        r.TravelDate,
		PaymentDate:       r.PaymentDate,
		Observation:       r.Observation,
		QuotaMonth:        r.QuotaMonth,
		QuotaAmount:       r.QuotaAmount,
		QuotaBalance:      r.QuotaBalance,
		AgencyName:        r.AgencyName,
		AgencyEmail:       r.AgencyEmail,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		ReservationNumber: r.ReservationNumber,
		ClientName:        r.ClientName,
		Observation:       r.Observation,
		QuotaMonth:        r.QuotaMonth,
		QuotaAmount:       r.QuotaAmount,
		QuotaBalance:      r.QuotaBalance,
		AgencyName:        r.AgencyName,
		AgencyEmail:       r.AgencyEmail,
	}
	if r.TravelDate != nil {
		req.TravelDate = &reqdto.DateOnly{Time: *r.TravelDate}
	}
	if r.PaymentDate != nil {
		req.PaymentDate = &reqdto.DateOnly{Time: *r.PaymentDate}
	}
	return req
}

// Fluent builder methods
func (r *ReservationBuilder) WithReservationNumber(number string) *ReservationBuilder {
	r.ReservationNumber = number
	return r
}

func (r *ReservationBuilder) WithClientName(name string) *ReservationBuilder {
	r.ClientName = name
	return r
}

func (r *ReservationBuilder) WithTravelDate(t *time.Time) *ReservationBuilder {
	r.TravelDate = t
	return r
}

func (r *ReservationBuilder) WithQuotaMonth(month *string) *ReservationBuilder {
	r.QuotaMonth = month
	return r
}

func (r *ReservationBuilder) WithQuota(amount, balance *decimal.Decimal) *ReservationBuilder {
	r.QuotaAmount = amount
	r.QuotaBalance = balance
	return r
}

func (r *ReservationBuilder) WithAgency(name, email *string) *ReservationBuilder {
	r.AgencyName = name
	r.AgencyEmail = email
	return r
}

func (r *ReservationBuilder) WithCreatedAt(createdAt time.Time) *ReservationBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReservationBuilder) AsFullyPaid() *ReservationBuilder {
	zero := decimal.Zero
	r.QuotaBalance = &zero
	return r
}

func (r *ReservationBuilder) AsBare() *ReservationBuilder {
	r.TravelDate = nil
	r.PaymentDate = nil
	r.Observation = nil
	r.QuotaMonth = nil
	r.QuotaAmount = nil
	r.QuotaBalance = nil
	r.AgencyName = nil
	r.AgencyEmail = nil
	return r
}
