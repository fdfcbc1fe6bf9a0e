package request

import "onvacation-backend/internal/usecase"

type SendEmailRequest struct {
	AgencyEmail string `json:"agencyEmail" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Body        string `json:"body" binding:"required"`
	// Defaults to true when omitted.
	IncludeReservations *bool `json:"includeReservations,omitempty"`
}

func (r SendEmailRequest) ToParams() usecase.SendEmailParams {
	include := true
	if r.IncludeReservations != nil {
		include = *r.IncludeReservations
	}
	return usecase.SendEmailParams{
		AgencyEmail:         r.AgencyEmail,
		Subject:             r.Subject,
		Body:                r.Body,
		IncludeReservations: include,
	}
}
