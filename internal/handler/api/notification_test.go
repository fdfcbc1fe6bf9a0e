//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"onvacation-backend/internal/handler/api"
	resdto "onvacation-backend/internal/handler/dto/response"
	"onvacation-backend/internal/usecase"
	"onvacation-backend/tests/common/httptest"
	usecasemock "onvacation-backend/tests/mock/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockNotificationUseCase
	handler     *api.NotificationHandler
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockNotificationUseCase(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockUseCase)

	s.router.POST("/notifications/email", s.handler.SendEmail)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) TestSendEmail() {
	url := "/notifications/email"

	reqBody := map[string]any{
		"agencyEmail": "contacto@viajesandinos.co",
		"subject":     "Estado de cuenta",
		"body":        "Estimada agencia,",
	}

	s.Run("success: returns the composed message", func() {
		var captured usecase.SendEmailParams
		s.mockUseCase.EXPECT().SendAgencyEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params usecase.SendEmailParams) (*usecase.EmailMessage, error) {
				captured = params
				return &usecase.EmailMessage{
					To:      params.AgencyEmail,
					Subject: params.Subject,
					Body:    params.Body,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.EmailMessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("contacto@viajesandinos.co", response.To)
		s.Equal("Estimada agencia,", response.Body)
		// includeReservations defaults to true when omitted
		s.True(captured.IncludeReservations)
	})

	s.Run("success: explicit includeReservations=false is honored", func() {
		var captured usecase.SendEmailParams
		s.mockUseCase.EXPECT().SendAgencyEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params usecase.SendEmailParams) (*usecase.EmailMessage, error) {
				captured = params
				return &usecase.EmailMessage{}, nil
			}).Times(1)

		body := map[string]any{
			"agencyEmail":         "contacto@viajesandinos.co",
			"subject":             "Estado de cuenta",
			"body":                "Estimada agencia,",
			"includeReservations": false,
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.False(captured.IncludeReservations)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"subject": "s"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "blank recipient",
				usecaseError:   usecase.ErrMissingRecipient,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "incomplete",
			},
			{
				name:           "gateway failure",
				usecaseError:   usecase.ErrEmailGateway,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Email delivery failed",
			},
			{
				name:           "unexpected error",
				usecaseError:   errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to send email",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockUseCase.EXPECT().SendAgencyEmail(gomock.Any(), gomock.Any()).
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
