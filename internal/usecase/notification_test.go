//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"testing"

	"onvacation-backend/internal/usecase"
	"onvacation-backend/internal/usecase/readmodel"
	"onvacation-backend/tests/common/builder"
	usecasemock "onvacation-backend/tests/mock/usecase"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotificationUseCase(t *testing.T) (usecase.NotificationUseCase, *usecasemock.MockReservationRepository, *usecasemock.MockEmailGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := usecasemock.NewMockReservationRepository(ctrl)
	gateway := usecasemock.NewMockEmailGateway(ctrl)
	return usecase.NewNotificationUseCase(repo, gateway), repo, gateway
}

func TestNotificationUseCase_SendAgencyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields are rejected before any collaborator call", func(t *testing.T) {
		cases := []struct {
			name   string
			params usecase.SendEmailParams
			errIs  error
		}{
			{
				name:   "blank recipient",
				params: usecase.SendEmailParams{AgencyEmail: "  ", Subject: "Hola", Body: "Cuerpo"},
				errIs:  usecase.ErrMissingRecipient,
			},
			{
				name:   "blank subject",
				params: usecase.SendEmailParams{AgencyEmail: "contacto@viajesandinos.co", Subject: "", Body: "Cuerpo"},
				errIs:  usecase.ErrMissingSubject,
			},
			{
				name:   "blank body",
				params: usecase.SendEmailParams{AgencyEmail: "contacto@viajesandinos.co", Subject: "Hola", Body: "   "},
				errIs:  usecase.ErrMissingBody,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, _, _ := newNotificationUseCase(t)
				msg, err := uc.SendAgencyEmail(ctx, tc.params)
				require.Nil(t, msg)
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("without reservations the body passes through untouched", func(t *testing.T) {
		uc, _, gateway := newNotificationUseCase(t)

		body := "Estimada agencia,\n\nSaludos & <cordiales>.\n"
		var sent usecase.EmailMessage
		gateway.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg usecase.EmailMessage) error {
				sent = msg
				return nil
			})

		msg, err := uc.SendAgencyEmail(ctx, usecase.SendEmailParams{
			AgencyEmail:         "contacto@viajesandinos.co",
			Subject:             "Estado de cuenta",
			Body:                body,
			IncludeReservations: false,
		})
		require.NoError(t, err)
		require.NotNil(t, msg)

		assert.Equal(t, body, sent.Body)
		assert.Equal(t, "contacto@viajesandinos.co", sent.To)
		assert.Equal(t, "Estado de cuenta", sent.Subject)
	})

	t.Run("with reservations the body gains an HTML table", func(t *testing.T) {
		uc, repo, gateway := newNotificationUseCase(t)

		email := "contacto@viajesandinos.co"
		rm := builder.NewReservationBuilder().BuildRM()
		repo.EXPECT().FindByFilters(gomock.Any(), usecase.Filter{AgencyEmail: &email}).
			Return([]*readmodel.ReservationRM{rm}, nil)

		var sent usecase.EmailMessage
		gateway.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg usecase.EmailMessage) error {
				sent = msg
				return nil
			})

		body := "Estimada agencia,"
		msg, err := uc.SendAgencyEmail(ctx, usecase.SendEmailParams{
			AgencyEmail:         email,
			Subject:             "Estado de cuenta",
			Body:                body,
			IncludeReservations: true,
		})
		require.NoError(t, err)
		require.NotNil(t, msg)

		assert.True(t, strings.HasPrefix(sent.Body, body))
		assert.Contains(t, sent.Body, "<table")
		assert.Contains(t, sent.Body, rm.ReservationNumber)
		assert.Contains(t, sent.Body, rm.ClientName)
		assert.Contains(t, sent.Body, "1500.00")
	})

	t.Run("gateway failure is marked", func(t *testing.T) {
		uc, _, gateway := newNotificationUseCase(t)

		gateway.EXPECT().Send(gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: connection refused"))

		msg, err := uc.SendAgencyEmail(ctx, usecase.SendEmailParams{
			AgencyEmail: "contacto@viajesandinos.co",
			Subject:     "Estado de cuenta",
			Body:        "Cuerpo",
		})
		require.Nil(t, msg)
		require.ErrorIs(t, err, usecase.ErrEmailGateway)
	})
}
