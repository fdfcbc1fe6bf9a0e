package request

import "onvacation-backend/internal/usecase"

type CreateAgencyRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Phone         *string `json:"phone,omitempty"`
}

func (r CreateAgencyRequest) ToParams() usecase.CreateAgencyParams {
	return usecase.CreateAgencyParams{
		Name:          r.Name,
		Email:         r.Email,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
	}
}

// UpdateAgencyRequest patches: absent fields keep the stored value.
type UpdateAgencyRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

func (r UpdateAgencyRequest) ToParams() usecase.UpdateAgencyParams {
	return usecase.UpdateAgencyParams{
		Name:          r.Name,
		Email:         r.Email,
		ContactPerson: r.ContactPerson,
		Phone:         r.Phone,
		Active:        r.Active,
	}
}
