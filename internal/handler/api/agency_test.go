//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"onvacation-backend/internal/handler/api"
	resdto "onvacation-backend/internal/handler/dto/response"
	"onvacation-backend/internal/usecase"
	"onvacation-backend/internal/usecase/readmodel"
	"onvacation-backend/tests/common/builder"
	"onvacation-backend/tests/common/httptest"
	"onvacation-backend/tests/common/testutil"
	usecasemock "onvacation-backend/tests/mock/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AgencyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAgencyUseCase
	handler     *api.AgencyHandler
}

func (s *AgencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAgencyUseCase(s.mockCtrl)
	s.handler = api.NewAgencyHandler(s.mockUseCase)

	s.router.POST("/agencies", s.handler.Create)
	s.router.GET("/agencies", s.handler.List)
	s.router.GET("/agencies/active", s.handler.ListActive)
	s.router.GET("/agencies/by-email", s.handler.GetByEmail)
	s.router.GET("/agencies/by-name", s.handler.GetByName)
	s.router.GET("/agencies/:id", s.handler.Get)
	s.router.PUT("/agencies/:id", s.handler.Update)
	s.router.DELETE("/agencies/:id", s.handler.Delete)
}

func (s *AgencyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAgencyHandlerSuite(t *testing.T) {
	suite.Run(t, new(AgencyHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AgencyHandlerTestSuite) TestCreate() {
	url := "/agencies"

	reqBody := builder.NewAgencyBuilder().BuildCreateRequestDTO()
	returnRM := builder.NewAgencyBuilder().BuildRM()

	s.Run("success: returns 201 Created with the stored agency", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.AgencyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnRM.Name, response.Name)
		s.Equal(returnRM.Email, response.Email)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate email",
				usecaseError:   usecase.ErrDuplicateAgencyEmail,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already registered",
			},
			{
				name:           "domain validation error",
				usecaseError:   usecase.ErrDomainValidationFailed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "invalid",
			},
			{
				name:           "unexpected error",
				usecaseError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create agency",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *AgencyHandlerTestSuite) TestGet() {
	agencyID := uuid.New()
	url := "/agencies/" + agencyID.String()

	returnRM := builder.NewAgencyBuilder().BuildRM()
	returnRM.ID = agencyID

	s.Run("success: returns 200 OK with AgencyResponse", func() {
		s.mockUseCase.EXPECT().Get(gomock.Any(), agencyID).
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.AgencyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(agencyID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid agency id")
	})

	s.Run("error: 404 Not Found for missing agency", func() {
		s.mockUseCase.EXPECT().Get(gomock.Any(), agencyID).
			Return(nil, usecase.ErrAgencyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Agency not found")
	})
}

// ================================================================================
// TestGetByEmail / TestGetByName
// ================================================================================

func (s *AgencyHandlerTestSuite) TestGetByEmail() {
	returnRM := builder.NewAgencyBuilder().BuildRM()

	s.Run("success: returns the agency for the email", func() {
		s.mockUseCase.EXPECT().GetByEmail(gomock.Any(), "contacto@viajesandinos.co").
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/by-email?email=contacto@viajesandinos.co", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when email is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/by-email", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Email parameter is required")
	})

	s.Run("error: 404 Not Found for unknown email", func() {
		s.mockUseCase.EXPECT().GetByEmail(gomock.Any(), "nadie@example.com").
			Return(nil, usecase.ErrAgencyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/by-email?email=nadie@example.com", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Agency not found")
	})
}

func (s *AgencyHandlerTestSuite) TestGetByName() {
	returnRM := builder.NewAgencyBuilder().BuildRM()

	s.Run("success: hands the raw name to the usecase", func() {
		s.mockUseCase.EXPECT().GetByName(gomock.Any(), "viajes andinos").
			Return(returnRM, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/by-name?name=viajes%20andinos", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when name is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/by-name", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Name parameter is required")
	})
}

// ================================================================================
// TestList / TestListActive
// ================================================================================

func (s *AgencyHandlerTestSuite) TestList() {
	s.Run("success: returns every agency", func() {
		s.mockUseCase.EXPECT().List(gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 500 on usecase failure", func() {
		s.mockUseCase.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list agencies")
	})
}

func (s *AgencyHandlerTestSuite) TestListActive() {
	s.Run("success: returns only active agencies", func() {
		active := builder.NewAgencyBuilder().BuildRM()
		s.mockUseCase.EXPECT().ListActive(gomock.Any()).
			Return([]*readmodel.AgencyRM{active}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agencies/active", nil)

		var response []resdto.AgencyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.True(response[0].Active)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *AgencyHandlerTestSuite) TestUpdate() {
	agencyID := uuid.New()
	url := "/agencies/" + agencyID.String()

	returnRM := builder.NewAgencyBuilder().BuildRM()
	returnRM.ID = agencyID

	s.Run("success: deactivation round-trips through the usecase", func() {
		var captured usecase.UpdateAgencyParams
		s.mockUseCase.EXPECT().Update(gomock.Any(), agencyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, params usecase.UpdateAgencyParams) (*readmodel.AgencyRM, error) {
				captured = params
				return returnRM, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"active": false})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.Require().NotNil(captured.Active)
		s.False(*captured.Active)
		s.Nil(captured.Name)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "agency not found",
				usecaseError:   usecase.ErrAgencyNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Agency not found",
			},
			{
				name:           "duplicate email",
				usecaseError:   usecase.ErrDuplicateAgencyEmail,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already registered",
			},
			{
				name:           "domain validation error",
				usecaseError:   usecase.ErrDomainValidationFailed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "invalid",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().Update(gomock.Any(), agencyID, gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *AgencyHandlerTestSuite) TestDelete() {
	agencyID := uuid.New()
	url := "/agencies/" + agencyID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockUseCase.EXPECT().Delete(gomock.Any(), agencyID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for missing agency", func() {
		s.mockUseCase.EXPECT().Delete(gomock.Any(), agencyID).
			Return(usecase.ErrAgencyNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Agency not found")
	})
}
