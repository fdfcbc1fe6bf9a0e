package usecase

import (
	"context"
	"errors"

	"onvacation-backend/internal/domain/agency"
	"onvacation-backend/internal/infra"
	"onvacation-backend/internal/pkg/clock"
	"onvacation-backend/internal/pkg/errs"
	"onvacation-backend/internal/pkg/patch"
	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAgencyNotFound       = errors.New("agency not found")
	ErrDuplicateAgencyEmail = errors.New("agency email already in use")
)

type AgencyRepository interface {
	Create(ctx context.Context, ag *agency.Agency) (*readmodel.AgencyRM, error)
	Update(ctx context.Context, ag *agency.Agency) (*readmodel.AgencyRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AgencyRM, error)
	FindByEmail(ctx context.Context, email string) (*readmodel.AgencyRM, error)
	FindByNameIgnoreCase(ctx context.Context, name string) (*readmodel.AgencyRM, error)
	FindAll(ctx context.Context) ([]*readmodel.AgencyRM, error)
	FindActive(ctx context.Context) ([]*readmodel.AgencyRM, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type CreateAgencyParams struct {
	Name          string
	Email         string
	ContactPerson *string
	Phone         *string
}

// UpdateAgencyParams is a partial replacement: nil fields keep the stored
// value.
type UpdateAgencyParams struct {
	Name          *string
	Email         *string
	ContactPerson *string
	Phone         *string
	Active        *bool
}

type AgencyUseCase interface {
	Create(ctx context.Context, params CreateAgencyParams) (*readmodel.AgencyRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.AgencyRM, error)
	GetByEmail(ctx context.Context, email string) (*readmodel.AgencyRM, error)
	GetByName(ctx context.Context, name string) (*readmodel.AgencyRM, error)
	List(ctx context.Context) ([]*readmodel.AgencyRM, error)
	ListActive(ctx context.Context) ([]*readmodel.AgencyRM, error)
	Update(ctx context.Context, id uuid.UUID, params UpdateAgencyParams) (*readmodel.AgencyRM, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type agencyUseCaseImpl struct {
	agencyRepo AgencyRepository
	clock      clock.Clock
}

func NewAgencyUseCase(agencyRepo AgencyRepository, clock clock.Clock) AgencyUseCase {
	return &agencyUseCaseImpl{
		agencyRepo: agencyRepo,
		clock:      clock,
	}
}

// Create relies on the store's unique constraint on email: there is no
// pre-check, a concurrent duplicate loses at commit time.
func (a *agencyUseCaseImpl) Create(ctx context.Context, params CreateAgencyParams) (*readmodel.AgencyRM, error) {
	entity, err := agency.NewAgency(a.clock, params.Name, params.Email, params.ContactPerson, params.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := a.agencyRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateAgencyEmail
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (a *agencyUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.AgencyRM, error) {
	rm, err := a.agencyRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, errs.Wrap(err, "failed to find agency")
	}
	return rm, nil
}

func (a *agencyUseCaseImpl) GetByEmail(ctx context.Context, email string) (*readmodel.AgencyRM, error) {
	rm, err := a.agencyRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, errs.Wrap(err, "failed to find agency by email")
	}
	return rm, nil
}

func (a *agencyUseCaseImpl) GetByName(ctx context.Context, name string) (*readmodel.AgencyRM, error) {
	rm, err := a.agencyRepo.FindByNameIgnoreCase(ctx, name)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, errs.Wrap(err, "failed to find agency by name")
	}
	return rm, nil
}

func (a *agencyUseCaseImpl) List(ctx context.Context) ([]*readmodel.AgencyRM, error) {
	rms, err := a.agencyRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list agencies")
	}
	return rms, nil
}

func (a *agencyUseCaseImpl) ListActive(ctx context.Context) ([]*readmodel.AgencyRM, error) {
	rms, err := a.agencyRepo.FindActive(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list active agencies")
	}
	return rms, nil
}

func (a *agencyUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params UpdateAgencyParams) (*readmodel.AgencyRM, error) {
	current, err := a.agencyRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, errs.Wrap(err, "failed to find agency")
	}

	entity := agency.ReconstructAgency(
		current.ID,
		current.Name,
		current.Email,
		current.ContactPerson,
		current.Phone,
		current.Active,
		current.CreatedAt,
		current.UpdatedAt,
	)

	err = entity.Update(
		patch.Coalesce(params.Name, current.Name),
		patch.Coalesce(params.Email, current.Email),
		patch.CoalescePtr(params.ContactPerson, current.ContactPerson),
		patch.CoalescePtr(params.Phone, current.Phone),
		patch.Coalesce(params.Active, current.Active),
		a.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := a.agencyRepo.Update(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateAgencyEmail
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAgencyNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (a *agencyUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := a.agencyRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAgencyNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
