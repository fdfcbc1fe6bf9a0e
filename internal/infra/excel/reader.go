package excel

import (
	"errors"
	"io"
	"strings"
	"time"

	"onvacation-backend/internal/pkg/errs"
	"onvacation-backend/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var (
	ErrEmptySheet     = errors.New("sheet has no data rows")
	ErrMissingColumns = errors.New("sheet is missing required columns")
)

// Fixed column headers of the reservation sheets the agencies send.
// One additional dynamic column "CUOTA DE <MES>" names the installment
// month; its suffix is stored verbatim as the quota month.
const (
	headerReservationNumber = "NUMERO DE RESERVA"
	headerClientName        = "CLIENTE"
	headerTravelDate        = "FECHA DE VIAJE"
	headerObservation       = "OBSERVACION"
	headerPaymentDate       = "FECHA DE PAGO"
	headerBalance           = "SALDO"
	headerAgencyName        = "AGENCIA"
	headerAgencyEmail       = "EMAIL AGENCIA"

	quotaHeaderPrefix = "CUOTA DE "
)

// Reader parses reservation sheets with excelize. It only extracts raw
// values; domain validation happens during import.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (p *Reader) Read(r io.Reader) ([]usecase.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errs.Wrap(err, "failed to read sheet rows")
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	layout, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	var result []usecase.ImportRow
	for i, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		result = append(result, layout.toImportRow(i+2, cells))
	}
	if len(result) == 0 {
		return nil, ErrEmptySheet
	}
	return result, nil
}

// sheetLayout maps header names to column indexes. -1 means the column is
// absent.
type sheetLayout struct {
	reservationNumber int
	clientName        int
	travelDate        int
	observation       int
	paymentDate       int
	quota             int
	balance           int
	agencyName        int
	agencyEmail       int
	quotaMonth        *string
}

func mapHeader(header []string) (*sheetLayout, error) {
	layout := &sheetLayout{
		reservationNumber: -1,
		clientName:        -1,
		travelDate:        -1,
		observation:       -1,
		paymentDate:       -1,
		quota:             -1,
		balance:           -1,
		agencyName:        -1,
		agencyEmail:       -1,
	}

	for i, cell := range header {
		name := strings.ToUpper(strings.TrimSpace(cell))
		switch name {
		case headerReservationNumber:
			layout.reservationNumber = i
		case headerClientName:
			layout.clientName = i
		case headerTravelDate:
			layout.travelDate = i
		case headerObservation:
			layout.observation = i
		case headerPaymentDate:
			layout.paymentDate = i
		case headerBalance:
			layout.balance = i
		case headerAgencyName:
			layout.agencyName = i
		case headerAgencyEmail:
			layout.agencyEmail = i
		default:
			if strings.HasPrefix(name, quotaHeaderPrefix) {
				month := strings.TrimSpace(strings.TrimPrefix(name, quotaHeaderPrefix))
				if month != "" {
					layout.quota = i
					layout.quotaMonth = &month
				}
			}
		}
	}

	if layout.reservationNumber < 0 || layout.clientName < 0 {
		return nil, ErrMissingColumns
	}
	return layout, nil
}

func (l *sheetLayout) toImportRow(rowNumber int, cells []string) usecase.ImportRow {
	row := usecase.ImportRow{
		RowNumber:         rowNumber,
		ReservationNumber: cellAt(cells, l.reservationNumber),
		ClientName:        cellAt(cells, l.clientName),
		TravelDate:        parseDate(cellAt(cells, l.travelDate)),
		PaymentDate:       parseDate(cellAt(cells, l.paymentDate)),
		Observation:       optional(cellAt(cells, l.observation)),
		QuotaAmount:       parseDecimal(cellAt(cells, l.quota)),
		QuotaBalance:      parseDecimal(cellAt(cells, l.balance)),
		AgencyName:        optional(cellAt(cells, l.agencyName)),
		AgencyEmail:       optional(cellAt(cells, l.agencyEmail)),
	}
	if row.QuotaAmount != nil || row.QuotaBalance != nil {
		row.QuotaMonth = l.quotaMonth
	}
	return row
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// dateLayouts covers the formats the sheets arrive with; excelize returns
// the formatted cell text, not the underlying serial value.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"01-02-06",
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

func parseDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}
