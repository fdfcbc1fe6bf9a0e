package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"onvacation-backend/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ImportRow is one parsed spreadsheet row. The sheet reader does no domain
// validation; rows are validated entity by entity during import.
type ImportRow struct {
	RowNumber         int
	ReservationNumber string
	ClientName        string
	TravelDate        *time.Time
	PaymentDate       *time.Time
	Observation       *string
	QuotaMonth        *string
	QuotaAmount       *decimal.Decimal
	QuotaBalance      *decimal.Decimal
	AgencyName        *string
	AgencyEmail       *string
}

type SheetReader interface {
	Read(r io.Reader) ([]ImportRow, error)
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type ImportUseCase interface {
	ImportReservations(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type importUseCaseImpl struct {
	sheets       SheetReader
	reservations ReservationUseCase
}

func NewImportUseCase(sheets SheetReader, reservations ReservationUseCase) ImportUseCase {
	return &importUseCaseImpl{
		sheets:       sheets,
		reservations: reservations,
	}
}

// ImportReservations loads every valid row of the sheet. Invalid rows are
// skipped and counted rather than aborting the whole upload: agencies
// re-import the same sheet after fixing individual rows. A store failure
// still aborts, partial rows included.
func (u *importUseCaseImpl) ImportReservations(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := u.sheets.Read(r)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read reservation sheet")
	}

	result := &ImportResult{}
	for _, row := range rows {
		_, err := u.reservations.Create(ctx, CreateReservationParams{
			ReservationNumber: row.ReservationNumber,
			ClientName:        row.ClientName,
			TravelDate:        row.TravelDate,
			PaymentDate:       row.PaymentDate,
			Observation:       row.Observation,
			QuotaMonth:        row.QuotaMonth,
			QuotaAmount:       row.QuotaAmount,
			QuotaBalance:      row.QuotaBalance,
			AgencyName:        row.AgencyName,
			AgencyEmail:       row.AgencyEmail,
		})
		if err != nil {
			if errors.Is(err, ErrDomainValidationFailed) {
				slog.Warn("skipping invalid sheet row", "row", row.RowNumber, "error", err.Error())
				result.Skipped++
				continue
			}
			return nil, errs.Wrap(err, "failed to store imported reservation")
		}
		result.Imported++
	}
	return result, nil
}
