package request

import (
	"strings"
	"time"

	"onvacation-backend/internal/pkg/errs"
)

// DateOnly is a calendar date without time-of-day, serialized as
// "2006-01-02". The zero value means absent.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return errs.Wrap(err, "date must be formatted as YYYY-MM-DD")
	}
	d.Time = t.UTC()
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(time.DateOnly) + `"`), nil
}

// TimePtr converts an optional DateOnly into the *time.Time the usecase
// layer works with.
func (d *DateOnly) TimePtr() *time.Time {
	if d == nil || d.Time.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// ParseDateOnly parses a query-string date parameter.
func ParseDateOnly(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, errs.Wrap(err, "date must be formatted as YYYY-MM-DD")
	}
	t = t.UTC()
	return &t, nil
}
