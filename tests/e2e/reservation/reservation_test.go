//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"
	"time"

	"onvacation-backend/internal/handler/dto/response"
	"onvacation-backend/tests/common/builder"
	"onvacation-backend/tests/common/dbtest"
	"onvacation-backend/tests/common/httptest"
	"onvacation-backend/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	searchURL       = "/api/reservations/search"
	reportURL       = "/api/reservations/report/by-agency"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: reservation is created with equal timestamps", func() {
		t := s.T()

		reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEmpty(t, created.ID)
		require.Equal(t, created.CreatedAt, created.UpdatedAt, "createdAt and updatedAt must match on creation")

		expected := builder.NewReservationBuilder().BuildCreateRequestDTO()
		require.Equal(t, expected.ReservationNumber, created.ReservationNumber)
		require.Equal(t, expected.ClientName, created.ClientName)
	})

	s.Run("Normal case: duplicate reservation numbers are accepted", func() {
		t := s.T()

		reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		require.Equal(t, http.StatusCreated, w2.Code, "reservation numbers are not unique")
	})

	s.Run("Error case: balance above amount is rejected", func() {
		t := s.T()

		amount := decimal.RequireFromString("100.00")
		balance := decimal.RequireFromString("250.00")
		reqBody := builder.NewReservationBuilder().
			WithQuota(&amount, &balance).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "invalid")
	})
}

// =============================================================================
// TestUpdateReservation
// =============================================================================

func (s *ReservationSuite) TestUpdateReservation() {
	s.Run("Normal case: update refreshes updatedAt and keeps createdAt", func() {
		t := s.T()

		reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		newName := "Carlos Ruiz"
		updateBody := map[string]any{"clientName": newName}
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID.String(), updateBody)

		var updated response.ReservationResponse
		httptest.AssertSuccessResponse(t, uw, http.StatusOK, &updated)

		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, created.CreatedAt, updated.CreatedAt, "createdAt is immutable")
		require.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
		require.Equal(t, newName, updated.ClientName)

		// Untouched fields survive the partial update
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ClientName", "UpdatedAt"),
		}
		if diff := cmp.Diff(&created, &updated, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: unknown reservation returns 404", func() {
		t := s.T()

		updateBody := map[string]any{"clientName": "Nobody"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/93e7f40e-5dc9-4b44-92cb-9b5a4a9acf28", updateBody)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})
}

// =============================================================================
// TestSearchReservations
// =============================================================================

func (s *ReservationSuite) TestSearchReservations() {
	s.Run("Filters combine with AND and absent filters match everything", func() {
		t := s.T()

		andina := "Viajes Andinos"
		andinaEmail := "contacto@viajesandinos.co"
		caribe := "Viajes del Caribe"
		caribeEmail := "ventas@viajesdelcaribe.co"
		june := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		august := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

		seed := []struct {
			number string
			agency *string
			email  *string
			travel *time.Time
		}{
			{"RES-1", &andina, &andinaEmail, &june},
			{"RES-2", &andina, &andinaEmail, &august},
			{"RES-3", &caribe, &caribeEmail, &june},
			{"RES-4", nil, nil, nil},
		}
		for _, row := range seed {
			body := builder.NewReservationBuilder().
				WithReservationNumber(row.number).
				WithAgency(row.agency, row.email).
				WithTravelDate(row.travel).
				BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		cases := []struct {
			name        string
			query       string
			wantNumbers map[string]bool
		}{
			{
				name:        "no filters returns every reservation",
				query:       "",
				wantNumbers: map[string]bool{"RES-1": true, "RES-2": true, "RES-3": true, "RES-4": true},
			},
			{
				name:        "agency name only",
				query:       "?agencyName=Viajes%20Andinos",
				wantNumbers: map[string]bool{"RES-1": true, "RES-2": true},
			},
			{
				name:        "agency name and date range",
				query:       "?agencyName=Viajes%20Andinos&startDate=2025-06-01&endDate=2025-06-30",
				wantNumbers: map[string]bool{"RES-1": true},
			},
			{
				name:        "date range excludes reservations without travel date",
				query:       "?startDate=2025-01-01&endDate=2025-12-31",
				wantNumbers: map[string]bool{"RES-1": true, "RES-2": true, "RES-3": true},
			},
			{
				name:        "inclusive bounds",
				query:       "?startDate=2025-06-15&endDate=2025-06-15",
				wantNumbers: map[string]bool{"RES-1": true, "RES-3": true},
			},
			{
				name:        "agency email only",
				query:       "?agencyEmail=ventas%40viajesdelcaribe.co",
				wantNumbers: map[string]bool{"RES-3": true},
			},
		}

		for _, c := range cases {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, searchURL+c.query, nil)

			var results []response.ReservationResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &results)
			require.Len(t, results, len(c.wantNumbers), c.name)
			for _, r := range results {
				require.True(t, c.wantNumbers[r.ReservationNumber],
					"%s: unexpected reservation %s", c.name, r.ReservationNumber)
			}
		}
	})

	s.Run("Quota month lookup is case-insensitive", func() {
		t := s.T()

		month := "Junio"
		body := builder.NewReservationBuilder().WithQuotaMonth(&month).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body)
		require.Equal(t, http.StatusCreated, w.Code)

		qw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/quota-month/JUNIO", nil)

		var results []response.ReservationResponse
		httptest.AssertSuccessResponse(t, qw, http.StatusOK, &results)
		require.Len(t, results, 1)
	})
}

// =============================================================================
// TestCountByAgency
// =============================================================================

func (s *ReservationSuite) TestCountByAgency() {
	s.Run("Report groups by agency email, highest count first", func() {
		t := s.T()

		andina := "Viajes Andinos"
		andinaEmail := "contacto@viajesandinos.co"
		caribe := "Viajes del Caribe"
		caribeEmail := "ventas@viajesdelcaribe.co"

		for range 3 {
			body := builder.NewReservationBuilder().WithAgency(&andina, &andinaEmail).BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body)
			require.Equal(t, http.StatusCreated, w.Code)
		}
		body := builder.NewReservationBuilder().WithAgency(&caribe, &caribeEmail).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body)
		require.Equal(t, http.StatusCreated, w.Code)

		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, reportURL, nil)

		var report []response.AgencyCountResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &report)
		require.Len(t, report, 2)

		require.NotNil(t, report[0].AgencyEmail)
		require.Equal(t, andinaEmail, *report[0].AgencyEmail)
		require.Equal(t, int64(3), report[0].Total)
		require.Equal(t, int64(1), report[1].Total)
	})

	s.Run("Rows without an agency email are grouped under null", func() {
		t := s.T()

		dbtest.CreateTestReservation(t, s.DB, "RES-9001", "Sin Agencia", nil, nil)
		dbtest.CreateTestReservation(t, s.DB, "RES-9002", "Tampoco", nil, nil)

		rw := httptest.PerformRequest(t, s.Router, http.MethodGet, reportURL, nil)

		var report []response.AgencyCountResponse
		httptest.AssertSuccessResponse(t, rw, http.StatusOK, &report)
		require.Len(t, report, 1)
		require.Nil(t, report[0].AgencyEmail)
		require.Equal(t, int64(2), report[0].Total)
	})
}

// =============================================================================
// TestDeleteReservation
// =============================================================================

func (s *ReservationSuite) TestDeleteReservation() {
	s.Run("Normal case: delete removes the reservation", func() {
		t := s.T()

		reqBody := builder.NewReservationBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+created.ID.String(), nil)
		httptest.AssertSuccessResponse(t, dw, http.StatusOK, nil)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+created.ID.String(), nil)
		httptest.AssertErrorResponse(t, gw, http.StatusNotFound, "not found")
	})
}
