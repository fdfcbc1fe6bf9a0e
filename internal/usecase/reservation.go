package usecase

import (
	"context"
	"errors"
	"time"

	"onvacation-backend/internal/domain/reservation"
	"onvacation-backend/internal/infra"
	"onvacation-backend/internal/pkg/clock"
	"onvacation-backend/internal/pkg/errs"
	"onvacation-backend/internal/pkg/patch"
	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// Filter carries the optional search constraints. A nil field imposes no
// constraint; present fields are combined with AND. Name/email matching is
// exact and case-sensitive, the travel-date range is inclusive on both ends.
type Filter struct {
	AgencyName  *string
	AgencyEmail *string
	StartDate   *time.Time
	EndDate     *time.Time
}

// IsEmpty reports whether the filter constrains nothing, i.e. matches every
// stored reservation.
func (f Filter) IsEmpty() bool {
	return f.AgencyName == nil && f.AgencyEmail == nil && f.StartDate == nil && f.EndDate == nil
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error)
	Update(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	FindByFilters(ctx context.Context, filter Filter) ([]*readmodel.ReservationRM, error)
	FindByQuotaMonth(ctx context.Context, month string) ([]*readmodel.ReservationRM, error)
	CountByAgency(ctx context.Context) ([]*readmodel.AgencyCountRM, error)
}

type CreateReservationParams struct {
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
}

// UpdateReservationParams is a partial replacement: nil fields keep the
// stored value. Optional columns cannot be cleared through this path.
type UpdateReservationParams struct {
	ReservationNumber *string
	ClientName        *string
	TravelDate        *time.Time
	PaymentDate       *time.Time
	Observation       *string
	QuotaMonth        *string
	QuotaAmount       *decimal.Decimal
	QuotaBalance      *decimal.Decimal
	AgencyName        *string
	AgencyEmail       *string
}

type ReservationUseCase interface {
	Create(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	Search(ctx context.Context, filter Filter) ([]*readmodel.ReservationRM, error)
	ListByQuotaMonth(ctx context.Context, month string) ([]*readmodel.ReservationRM, error)
	CountByAgency(ctx context.Context) ([]*readmodel.AgencyCountRM, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*readmodel.ReservationRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	clock           clock.Clock
}

func NewReservationUseCase(reservationRepo ReservationRepository, clock clock.Clock) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		clock:           clock,
	}
}

func (r *reservationUseCaseImpl) Create(ctx context.Context, params CreateReservationParams) (*readmodel.ReservationRM, error) {
	quota, err := reservation.NewQuota(params.QuotaMonth, params.QuotaAmount, params.QuotaBalance)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	entity, err := reservation.NewReservation(
		r.clock,
		params.ReservationNumber,
		params.ClientName,
		params.TravelDate,
		params.PaymentDate,
		params.Observation,
		quota,
		reservation.NewAgencyRef(params.AgencyName, params.AgencyEmail),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := r.reservationRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) Search(ctx context.Context, filter Filter) ([]*readmodel.ReservationRM, error) {
	rms, err := r.reservationRepo.FindByFilters(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to search reservations")
	}
	return rms, nil
}

func (r *reservationUseCaseImpl) ListByQuotaMonth(ctx context.Context, month string) ([]*readmodel.ReservationRM, error) {
	rms, err := r.reservationRepo.FindByQuotaMonth(ctx, month)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations by quota month")
	}
	return rms, nil
}

func (r *reservationUseCaseImpl) CountByAgency(ctx context.Context) ([]*readmodel.AgencyCountRM, error) {
	counts, err := r.reservationRepo.CountByAgency(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count reservations by agency")
	}
	return counts, nil
}

func (r *reservationUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateReservationParams) (*readmodel.ReservationRM, error) {
	current, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	quota, err := reservation.NewQuota(
		patch.CoalescePtr(params.QuotaMonth, current.QuotaMonth),
		patch.CoalescePtr(params.QuotaAmount, current.QuotaAmount),
		patch.CoalescePtr(params.QuotaBalance, current.QuotaBalance),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	entity := reservation.ReconstructReservation(
		current.ID,
		current.ReservationNumber,
		current.ClientName,
		current.TravelDate,
		current.PaymentDate,
		current.Observation,
		quota,
		reservation.NewAgencyRef(current.AgencyName, current.AgencyEmail),
		current.CreatedAt,
		current.UpdatedAt,
	)

	err = entity.Update(
		patch.Coalesce(params.ReservationNumber, current.ReservationNumber),
		patch.Coalesce(params.ClientName, current.ClientName),
		patch.CoalescePtr(params.TravelDate, current.TravelDate),
		patch.CoalescePtr(params.PaymentDate, current.PaymentDate),
		patch.CoalescePtr(params.Observation, current.Observation),
		quota,
		reservation.NewAgencyRef(
			patch.CoalescePtr(params.AgencyName, current.AgencyName),
			patch.CoalescePtr(params.AgencyEmail, current.AgencyEmail),
		),
		r.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := r.reservationRepo.Update(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.reservationRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
