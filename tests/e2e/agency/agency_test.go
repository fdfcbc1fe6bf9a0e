//go:build e2e

package agency_test

import (
	"net/http"
	"testing"

	"onvacation-backend/internal/handler/dto/response"
	"onvacation-backend/tests/common/builder"
	"onvacation-backend/tests/common/dbtest"
	"onvacation-backend/tests/common/httptest"
	"onvacation-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const agenciesURL = "/api/agencies"

type AgencySuite struct {
	e2e.SharedSuite
}

func (s *AgencySuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAgencySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AgencySuite))
}

func (s *AgencySuite) TestCreateAgency() {
	s.Run("Normal case: agency is created active", func() {
		t := s.T()

		reqBody := builder.NewAgencyBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, reqBody)

		var created response.AgencyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEmpty(t, created.ID)
		require.True(t, created.Active)
		require.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	s.Run("Error case: duplicate email returns 409", func() {
		t := s.T()

		reqBody := builder.NewAgencyBuilder().BuildCreateRequestDTO()
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, reqBody)
		require.Equal(t, http.StatusCreated, w1.Code)

		reqBody.Name = "Another Name"
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, reqBody)
		httptest.AssertErrorResponse(t, w2, http.StatusConflict, "already registered")
	})
}

func (s *AgencySuite) TestAgencyLookups() {
	s.Run("Lookup by name is case-insensitive", func() {
		t := s.T()

		reqBody := builder.NewAgencyBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, agenciesURL+"/by-name?name=VIAJES%20ANDINOS", nil)

		var found response.AgencyResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &found)
		require.Equal(t, reqBody.Email, found.Email)
	})

	s.Run("Lookup by email finds rows inserted out of band", func() {
		t := s.T()

		dbtest.CreateTestAgency(t, s.DB, "Viajes del Sur", "sur@viajesdelsur.co")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, agenciesURL+"/by-email?email=sur@viajesdelsur.co", nil)

		var found response.AgencyResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &found)
		require.Equal(t, "Viajes del Sur", found.Name)
	})

	s.Run("Active listing excludes deactivated agencies", func() {
		t := s.T()

		first := builder.NewAgencyBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, first)
		var created response.AgencyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		second := builder.NewAgencyBuilder().
			WithName("Viajes del Caribe").
			WithEmail("ventas@viajesdelcaribe.co").
			BuildCreateRequestDTO()
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, agenciesURL, second)
		require.Equal(t, http.StatusCreated, w2.Code)

		inactive := false
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, agenciesURL+"/"+created.ID.String(), map[string]any{"active": inactive})
		require.Equal(t, http.StatusOK, uw.Code)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, agenciesURL+"/active", nil)

		var active []response.AgencyResponse
		httptest.AssertSuccessResponse(t, aw, http.StatusOK, &active)
		require.Len(t, active, 1)
		require.Equal(t, "ventas@viajesdelcaribe.co", active[0].Email)
	})
}
