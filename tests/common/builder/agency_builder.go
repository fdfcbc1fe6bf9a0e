//go:build unit || e2e

package builder

import (
	"time"

	domagency "onvacation-backend/internal/domain/agency"
	reqdto "onvacation-backend/internal/handler/dto/request"
	"onvacation-backend/internal/pkg/clock"
	"onvacation-backend/internal/usecase"
	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AgencyBuilder struct {
	Name          string
	Email         string
	ContactPerson *string
	Phone         *string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewAgencyBuilder() *AgencyBuilder {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	contact := "Laura Pardo"
	phone := "+57 310 555 0101"

	return &AgencyBuilder{
		Name:          "Viajes Andinos",
		Email:         "contacto@viajesandinos.co",
		ContactPerson: &contact,
		Phone:         &phone,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (a *AgencyBuilder) With(mutate func(*AgencyBuilder)) *AgencyBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AgencyBuilder) BuildDomain() (*domagency.Agency, error) {
	return domagency.NewAgency(clock.NewMockClock(a.CreatedAt), a.Name, a.Email, a.ContactPerson, a.Phone)
}

func (a *AgencyBuilder) BuildRM() *readmodel.AgencyRM {
	return &readmodel.AgencyRM{
		ID:            uuid.New(),
		Name:          a.Name,
		Email:         a.Email,
		ContactPerson: a.ContactPerson,
		Phone:         a.Phone,
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (a *AgencyBuilder) BuildCreateParams() usecase.CreateAgencyParams {
	return usecase.CreateAgencyParams{
		Name:          a.Name,
		Email:         a.Email,
		ContactPerson: a.ContactPerson,
		Phone:         a.Phone,
	}
}

func (a *AgencyBuilder) BuildCreateRequestDTO() reqdto.CreateAgencyRequest {
	return reqdto.CreateAgencyRequest{
		Name:          a.Name,
		Email:         a.Email,
		ContactPerson: a.ContactPerson,
		Phone:         a.Phone,
	}
}

func (a *AgencyBuilder) BuildUpdateRequestDTO() reqdto.UpdateAgencyRequest {
	name := a.Name
	email := a.Email
	active := a.Active
	return reqdto.UpdateAgencyRequest{
		Name:          &name,
		Email:         &email,
		ContactPerson: a.ContactPerson,
		Phone:         a.Phone,
		Active:        &active,
	}
}

// Fluent builder methods
func (a *AgencyBuilder) WithName(name string) *AgencyBuilder {
	a.Name = name
	return a
}

func (a *AgencyBuilder) WithEmail(email string) *AgencyBuilder {
	a.Email = email
	return a
}

func (a *AgencyBuilder) WithContactPerson(contact *string) *AgencyBuilder {
	a.ContactPerson = contact
	return a
}

func (a *AgencyBuilder) WithPhone(phone *string) *AgencyBuilder {
	a.Phone = phone
	return a
}

func (a *AgencyBuilder) AsInactive() *AgencyBuilder {
	a.Active = false
	return a
}
