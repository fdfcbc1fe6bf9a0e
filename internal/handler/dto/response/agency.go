package response

import (
	"time"

	"onvacation-backend/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AgencyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ContactPerson *string   `json:"contactPerson,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromAgencyRM(rm *readmodel.AgencyRM) *AgencyResponse {
	var resp AgencyResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAgencyRMs(rms []*readmodel.AgencyRM) []*AgencyResponse {
	result := make([]*AgencyResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromAgencyRM(rm)
	}
	return result
}
