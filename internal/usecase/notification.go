package usecase

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"time"

	"onvacation-backend/internal/pkg/errs"
	"onvacation-backend/internal/usecase/readmodel"
)

var (
	ErrMissingRecipient = errors.New("agency email is required")
	ErrMissingSubject   = errors.New("subject is required")
	ErrMissingBody      = errors.New("body is required")
	ErrEmailGateway     = errors.New("email gateway failure")
)

// EmailMessage is the payload handed to the external email gateway.
// The composer never performs delivery, retries or address validation.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

type EmailGateway interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type SendEmailParams struct {
	AgencyEmail         string
	Subject             string
	Body                string
	IncludeReservations bool
}

type NotificationUseCase interface {
	SendAgencyEmail(ctx context.Context, params SendEmailParams) (*EmailMessage, error)
}

type notificationUseCaseImpl struct {
	reservationRepo ReservationRepository
	gateway         EmailGateway
}

func NewNotificationUseCase(reservationRepo ReservationRepository, gateway EmailGateway) NotificationUseCase {
	return &notificationUseCaseImpl{
		reservationRepo: reservationRepo,
		gateway:         gateway,
	}
}

// SendAgencyEmail composes the outbound payload and queues it on the gateway.
// With IncludeReservations the agency's reservations are appended to the body
// as an HTML table; otherwise the body is passed through byte-identical.
func (n *notificationUseCaseImpl) SendAgencyEmail(ctx context.Context, params SendEmailParams) (*EmailMessage, error) {
	if strings.TrimSpace(params.AgencyEmail) == "" {
		return nil, ErrMissingRecipient
	}
	if strings.TrimSpace(params.Subject) == "" {
		return nil, ErrMissingSubject
	}
	if strings.TrimSpace(params.Body) == "" {
		return nil, ErrMissingBody
	}

	body := params.Body
	if params.IncludeReservations {
		reservations, err := n.reservationRepo.FindByFilters(ctx, Filter{AgencyEmail: &params.AgencyEmail})
		if err != nil {
			return nil, errs.Wrap(err, "failed to load reservations for email")
		}
		rendered, err := renderReservationTable(reservations)
		if err != nil {
			return nil, errs.Wrap(err, "failed to render reservation table")
		}
		body += rendered
	}

	msg := EmailMessage{
		To:      params.AgencyEmail,
		Subject: params.Subject,
		Body:    body,
	}

	if err := n.gateway.Send(ctx, msg); err != nil {
		return nil, errs.Mark(err, ErrEmailGateway)
	}
	return &msg, nil
}

var reservationTableTmpl = template.Must(template.New("reservation_table").Parse(`
<table border="1" cellpadding="4" cellspacing="0">
  <thead>
    <tr>
      <th>Reserva</th>
      <th>Cliente</th>
      <th>Fecha de viaje</th>
      <th>Cuota</th>
      <th>Valor</th>
      <th>Saldo</th>
    </tr>
  </thead>
  <tbody>
{{- range . }}
    <tr>
      <td>{{ .Number }}</td>
      <td>{{ .Client }}</td>
      <td>{{ .TravelDate }}</td>
      <td>{{ .QuotaMonth }}</td>
      <td>{{ .QuotaAmount }}</td>
      <td>{{ .QuotaBalance }}</td>
    </tr>
{{- end }}
  </tbody>
</table>
`))

type reservationRow struct {
	Number       string
	Client       string
	TravelDate   string
	QuotaMonth   string
	QuotaAmount  string
	QuotaBalance string
}

func renderReservationTable(reservations []*readmodel.ReservationRM) (string, error) {
	rows := make([]reservationRow, len(reservations))
	for i, rm := range reservations {
		row := reservationRow{
			Number: rm.ReservationNumber,
			Client: rm.ClientName,
		}
		if rm.TravelDate != nil {
			row.TravelDate = rm.TravelDate.Format(time.DateOnly)
		}
		if rm.QuotaMonth != nil {
			row.QuotaMonth = *rm.QuotaMonth
		}
		if rm.QuotaAmount != nil {
			row.QuotaAmount = rm.QuotaAmount.StringFixed(2)
		}
		if rm.QuotaBalance != nil {
			row.QuotaBalance = rm.QuotaBalance.StringFixed(2)
		}
		rows[i] = row
	}

	var sb strings.Builder
	if err := reservationTableTmpl.Execute(&sb, rows); err != nil {
		return "", err
	}
	return sb.String(), nil
}
