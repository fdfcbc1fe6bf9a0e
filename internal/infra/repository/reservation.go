package repository

import (
	"context"

	"onvacation-backend/internal/domain/reservation"
	"onvacation-backend/internal/infra"
	"onvacation-backend/internal/pkg/pgconv"
	"onvacation-backend/internal/usecase"
	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `
id, reservation_number, client_name, travel_date, observation, payment_date,
quota_month, quota_amount, quota_balance, agency_name, agency_email,
created_at, updated_at`

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	const stmt = `
INSERT INTO reservations (
  id, reservation_number, client_name, travel_date, observation, payment_date,
  quota_month, quota_amount, quota_balance, agency_name, agency_email,
  created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, stmt,
		res.ID(),
		res.ReservationNumber(),
		res.ClientName(),
		pgconv.DatePtrToPgtype(res.TravelDate()),
		pgconv.StringPtrToPgtype(res.Observation()),
		pgconv.DatePtrToPgtype(res.PaymentDate()),
		pgconv.StringPtrToPgtype(res.Quota().Month()),
		pgconv.DecimalPtrToNumeric(res.Quota().Amount()),
		pgconv.DecimalPtrToNumeric(res.Quota().Balance()),
		pgconv.StringPtrToPgtype(res.Agency().Name()),
		pgconv.StringPtrToPgtype(res.Agency().Email()),
		pgconv.TimeToPgtype(res.CreatedAt()),
		pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return reservationEntityToRM(res), nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	const stmt = `
UPDATE reservations SET
  reservation_number = $2,
  client_name = $3,
  travel_date = $4,
  observation = $5,
  payment_date = $6,
  quota_month = $7,
  quota_amount = $8,
  quota_balance = $9,
  agency_name = $10,
  agency_email = $11,
  updated_at = $12
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		res.ID(),
		res.ReservationNumber(),
		res.ClientName(),
		pgconv.DatePtrToPgtype(res.TravelDate()),
		pgconv.StringPtrToPgtype(res.Observation()),
		pgconv.DatePtrToPgtype(res.PaymentDate()),
		pgconv.StringPtrToPgtype(res.Quota().Month()),
		pgconv.DecimalPtrToNumeric(res.Quota().Amount()),
		pgconv.DecimalPtrToNumeric(res.Quota().Balance()),
		pgconv.StringPtrToPgtype(res.Agency().Name()),
		pgconv.StringPtrToPgtype(res.Agency().Email()),
		pgconv.TimeToPgtype(res.UpdatedAt()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return reservationEntityToRM(res), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	rm, err := scanReservation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rm, nil
}

// FindByFilters mirrors the optional-parameter query: a NULL bind skips its
// predicate entirely, present binds are ANDed. Rows with a NULL travel_date
// never match a date bound. No ORDER BY: callers get an unspecified order.
func (r *ReservationRepository) FindByFilters(ctx context.Context, filter usecase.Filter) ([]*readmodel.ReservationRM, error) {
	const query = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE ($1::text IS NULL OR agency_name = $1)
  AND ($2::text IS NULL OR agency_email = $2)
  AND ($3::date IS NULL OR travel_date >= $3)
  AND ($4::date IS NULL OR travel_date <= $4)`

	rows, err := r.pool.Query(ctx, query,
		pgconv.StringPtrToPgtype(filter.AgencyName),
		pgconv.StringPtrToPgtype(filter.AgencyEmail),
		pgconv.DatePtrToPgtype(filter.StartDate),
		pgconv.DatePtrToPgtype(filter.EndDate),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search reservations", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) FindByQuotaMonth(ctx context.Context, month string) ([]*readmodel.ReservationRM, error) {
	const query = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE LOWER(quota_month) = LOWER($1)`

	rows, err := r.pool.Query(ctx, query, month)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by quota month", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// CountByAgency keeps the NULL agency_email group and breaks count ties by
// email ascending so the report is deterministic.
func (r *ReservationRepository) CountByAgency(ctx context.Context) ([]*readmodel.AgencyCountRM, error) {
	const query = `
SELECT agency_email, COUNT(*) AS total
FROM reservations
GROUP BY agency_email
ORDER BY total DESC, agency_email ASC NULLS LAST`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by agency", err)
	}
	defer rows.Close()

	var result []*readmodel.AgencyCountRM
	for rows.Next() {
		var email pgtype.Text
		var count readmodel.AgencyCountRM
		if err := rows.Scan(&email, &count.Total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan agency count row", err)
		}
		count.AgencyEmail = pgconv.StringPtrFromPgtype(email)
		result = append(result, &count)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate agency count rows", err)
	}
	return result, nil
}

func collectReservations(rows pgx.Rows) ([]*readmodel.ReservationRM, error) {
	var result []*readmodel.ReservationRM
	for rows.Next() {
		rm, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

func scanReservation(row pgx.Row) (*readmodel.ReservationRM, error) {
	var (
		rm           readmodel.ReservationRM
		travelDate   pgtype.Date
		observation  pgtype.Text
		paymentDate  pgtype.Date
		quotaMonth   pgtype.Text
		quotaAmount  pgtype.Numeric
		quotaBalance pgtype.Numeric
		agencyName   pgtype.Text
		agencyEmail  pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)

	err := row.Scan(
		&rm.ID,
		&rm.ReservationNumber,
		&rm.ClientName,
		&travelDate,
		&observation,
		&paymentDate,
		&quotaMonth,
		&quotaAmount,
		&quotaBalance,
		&agencyName,
		&agencyEmail,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.TravelDate = pgconv.DatePtrFromPgtype(travelDate)
	rm.Observation = pgconv.StringPtrFromPgtype(observation)
	rm.PaymentDate = pgconv.DatePtrFromPgtype(paymentDate)
	rm.QuotaMonth = pgconv.StringPtrFromPgtype(quotaMonth)
	rm.QuotaAmount = pgconv.DecimalPtrFromNumeric(quotaAmount)
	rm.QuotaBalance = pgconv.DecimalPtrFromNumeric(quotaBalance)
	rm.AgencyName = pgconv.StringPtrFromPgtype(agencyName)
	rm.AgencyEmail = pgconv.StringPtrFromPgtype(agencyEmail)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

func reservationEntityToRM(res *reservation.Reservation) *readmodel.ReservationRM {
	return &readmodel.ReservationRM{
		ID:                res.ID(),
		ReservationNumber: res.ReservationNumber(),
		ClientName:        res.ClientName(),
		TravelDate:        res.TravelDate(),
		PaymentDate:       res.PaymentDate(),
		Observation:       res.Observation(),
		QuotaMonth:        res.Quota().Month(),
		QuotaAmount:       res.Quota().Amount(),
		QuotaBalance:      res.Quota().Balance(),
		AgencyName:        res.Agency().Name(),
		AgencyEmail:       res.Agency().Email(),
		CreatedAt:         res.CreatedAt(),
		UpdatedAt:         res.UpdatedAt(),
	}
}
