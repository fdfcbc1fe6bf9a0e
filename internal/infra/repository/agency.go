package repository

import (
	"context"

	"onvacation-backend/internal/domain/agency"
	"onvacation-backend/internal/infra"
	"onvacation-backend/internal/pkg/pgconv"
	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const agencyColumns = `
id, name, email, contact_person, phone, active, created_at, updated_at`

type AgencyRepository struct {
	pool *pgxpool.Pool
}

func NewAgencyRepository(pool *pgxpool.Pool) *AgencyRepository {
	return &AgencyRepository{pool: pool}
}

func (r *AgencyRepository) Create(ctx context.Context, ag *agency.Agency) (*readmodel.AgencyRM, error) {
	const stmt = `
INSERT INTO agencies (id, name, email, contact_person, phone, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, stmt,
		ag.ID(),
		ag.Name(),
		ag.Email(),
		pgconv.StringPtrToPgtype(ag.ContactPerson()),
		pgconv.StringPtrToPgtype(ag.Phone()),
		ag.IsActive(),
		pgconv.TimeToPgtype(ag.CreatedAt()),
		pgconv.TimeToPgtype(ag.UpdatedAt()),
	)
	if err != nil {
		// Unique violations on email come back as DUPLICATE_KEY.
		return nil, infra.WrapRepoErr("failed to create agency", err)
	}

	return agencyEntityToRM(ag), nil
}

func (r *AgencyRepository) Update(ctx context.Context, ag *agency.Agency) (*readmodel.AgencyRM, error) {
	const stmt = `
UPDATE agencies SET
  name = $2,
  email = $3,
  contact_person = $4,
  phone = $5,
  active = $6,
  updated_at = $7
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		ag.ID(),
		ag.Name(),
		ag.Email(),
		pgconv.StringPtrToPgtype(ag.ContactPerson()),
		pgconv.StringPtrToPgtype(ag.Phone()),
		ag.IsActive(),
		pgconv.TimeToPgtype(ag.UpdatedAt()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update agency", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("agency not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	return agencyEntityToRM(ag), nil
}

func (r *AgencyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM agencies WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete agency", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("agency not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *AgencyRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AgencyRM, error) {
	const query = `SELECT ` + agencyColumns + ` FROM agencies WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *AgencyRepository) FindByEmail(ctx context.Context, email string) (*readmodel.AgencyRM, error) {
	const query = `SELECT ` + agencyColumns + ` FROM agencies WHERE email = $1`
	return r.findOne(ctx, query, email)
}

func (r *AgencyRepository) FindByNameIgnoreCase(ctx context.Context, name string) (*readmodel.AgencyRM, error) {
	const query = `SELECT ` + agencyColumns + ` FROM agencies WHERE LOWER(name) = LOWER($1)`
	return r.findOne(ctx, query, name)
}

func (r *AgencyRepository) FindAll(ctx context.Context) ([]*readmodel.AgencyRM, error) {
	const query = `SELECT ` + agencyColumns + ` FROM agencies ORDER BY name ASC`
	return r.findMany(ctx, query)
}

func (r *AgencyRepository) FindActive(ctx context.Context) ([]*readmodel.AgencyRM, error) {
	const query = `SELECT ` + agencyColumns + ` FROM agencies WHERE active = TRUE ORDER BY name ASC`
	return r.findMany(ctx, query)
}

func (r *AgencyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM agencies WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check agency email", err)
	}
	return exists, nil
}

func (r *AgencyRepository) findOne(ctx context.Context, query string, arg any) (*readmodel.AgencyRM, error) {
	rm, err := scanAgency(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("agency not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find agency", err)
	}
	return rm, nil
}

func (r *AgencyRepository) findMany(ctx context.Context, query string) ([]*readmodel.AgencyRM, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agencies", err)
	}
	defer rows.Close()

	var result []*readmodel.AgencyRM
	for rows.Next() {
		rm, err := scanAgency(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan agency row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate agency rows", err)
	}
	return result, nil
}

func scanAgency(row pgx.Row) (*readmodel.AgencyRM, error) {
	var (
		rm            readmodel.AgencyRM
		contactPerson pgtype.Text
		phone         pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Email,
		&contactPerson,
		&phone,
		&rm.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rm.ContactPerson = pgconv.StringPtrFromPgtype(contactPerson)
	rm.Phone = pgconv.StringPtrFromPgtype(phone)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &rm, nil
}

func agencyEntityToRM(ag *agency.Agency) *readmodel.AgencyRM {
	return &readmodel.AgencyRM{
		ID:            ag.ID(),
		Name:          ag.Name(),
		Email:         ag.Email(),
		ContactPerson: ag.ContactPerson(),
		Phone:         ag.Phone(),
		Active:        ag.IsActive(),
		CreatedAt:     ag.CreatedAt(),
		UpdatedAt:     ag.UpdatedAt(),
	}
}
