package reservation

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeQuotaAmount  = errors.New("quota amount cannot be negative")
	ErrNegativeQuotaBalance = errors.New("quota balance cannot be negative")
	ErrBalanceExceedsAmount = errors.New("quota balance cannot exceed quota amount")
)

// Quota is one installment of the payment plan: a month label taken verbatim
// from the import sheet plus exact decimal amount and remaining balance.
// Every field is optional; the invariant 0 <= balance <= amount only binds
// the fields that are present.
type Quota struct {
	month   *string
	amount  *decimal.Decimal
	balance *decimal.Decimal
}

func NewQuota(month *string, amount, balance *decimal.Decimal) (Quota, error) {
	if amount != nil && amount.IsNegative() {
		return Quota{}, ErrNegativeQuotaAmount
	}
	if balance != nil && balance.IsNegative() {
		return Quota{}, ErrNegativeQuotaBalance
	}
	if amount != nil && balance != nil && balance.GreaterThan(*amount) {
		return Quota{}, ErrBalanceExceedsAmount
	}
	return Quota{month: month, amount: amount, balance: balance}, nil
}

func (q Quota) Month() *string            { return q.month }
func (q Quota) Amount() *decimal.Decimal  { return q.amount }
func (q Quota) Balance() *decimal.Decimal { return q.balance }

// AgencyRef is the denormalized agency identity carried on each reservation.
// It is a copy by value: the referenced agency may not exist as a row, which
// is expected for bulk-imported data.
type AgencyRef struct {
	name  *string
	email *string
}

func NewAgencyRef(name, email *string) AgencyRef {
	return AgencyRef{name: normalize(name), email: normalize(email)}
}

func (a AgencyRef) Name() *string  { return a.name }
func (a AgencyRef) Email() *string { return a.email }

func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
