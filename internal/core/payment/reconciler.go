// Package payment maintains the list of payments backing one transaction:
// single payment, free-form split rows, or generated installments. Every
// operation is pure and returns a new slice.
package payment

import (
	"errors"
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/period"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidInstallmentCount is returned when asked for fewer than one installment.
	ErrInvalidInstallmentCount = errors.New("installment count must be at least 1")
	// ErrNothingToSplit is returned when the existing payments already cover the amount.
	ErrNothingToSplit = errors.New("no outstanding amount to split into installments")
)

// DefaultStatus is the status of the single payment when the caller leaves it
// unset: an entry without installments is taken as settled.
const DefaultStatus = domain.Paid

// Tolerance is the largest difference still accepted as balanced.
var Tolerance = decimal.New(1, -2)

var hundred = decimal.NewFromInt(100)

// Editor holds the transaction-level fields a payment list is reconciled
// against. It is plain state owned by the caller.
type Editor struct {
	Amount decimal.Decimal      // Transaction amount
	Date   time.Time            // Reference date of the transaction
	Method string               // Default method for new rows
	Status domain.PaymentStatus // Status of the single payment while not split
	newID  func() string
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator overrides how payment ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(e *Editor) {
		e.newID = gen
	}
}

// NewEditor creates an Editor for a transaction of the given amount. An empty
// status means DefaultStatus.
func NewEditor(amount decimal.Decimal, date time.Time, method string, status domain.PaymentStatus, opts ...Option) *Editor {
	if status == "" {
		status = DefaultStatus
	}
	e := &Editor{
		Amount: amount.Round(2),
		Date:   date,
		Method: method,
		Status: status,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Single returns the one-payment list used while split mode is off.
func (e *Editor) Single() []domain.Payment {
	status := e.Status
	if status != domain.Paid {
		status = domain.Pending
	}
	return []domain.Payment{{
		PaymentID: e.newID(),
		Method:    e.Method,
		Amount:    e.Amount,
		Date:      e.Date,
		Status:    status,
	}}
}

// ToggleSplit switches between single and split mode. Entering split mode
// seeds the list with one payment for the full amount; leaving it discards the
// list (the caller keeps the single-payment fields).
func (e *Editor) ToggleSplit(current []domain.Payment, split bool) []domain.Payment {
	if !split {
		return nil
	}
	if len(current) > 0 {
		return clone(current)
	}
	return e.Single()
}

// Outstanding is the transaction amount not yet covered by payments. It may be
// negative when payments exceed the amount.
func (e *Editor) Outstanding(payments []domain.Payment) decimal.Decimal {
	return e.Amount.Sub(Sum(payments))
}

// AddRow appends a pending payment defaulting to the outstanding difference,
// never below zero.
func (e *Editor) AddRow(payments []domain.Payment) []domain.Payment {
	amount := e.Outstanding(payments)
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	out := clone(payments)
	return append(out, domain.Payment{
		PaymentID: e.newID(),
		Method:    e.Method,
		Amount:    amount,
		Date:      e.Date,
		Status:    domain.Pending,
	})
}

// RemoveRow drops the payment with the given id.
func RemoveRow(payments []domain.Payment, id string) []domain.Payment {
	out := make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		if p.PaymentID != id {
			out = append(out, p)
		}
	}
	return out
}

// GenerateInstallments splits an amount into count monthly installments and
// appends them to payments. With no existing payments the whole transaction
// amount is split and the first installment falls on the reference date;
// otherwise only the outstanding remainder is split, starting one month after
// the reference date. Every date is counted in months from the reference
// date, so a month-end reference stays on month ends.
//
// The split is done in whole cents: every installment gets
// floor(amount/count) cents and the leftover cents go to the first one, so
// the installments always add up to the exact amount.
func (e *Editor) GenerateInstallments(payments []domain.Payment, count int, method string) ([]domain.Payment, error) {
	if count < 1 {
		return clone(payments), ErrInvalidInstallmentCount
	}

	target := e.Amount
	offset := 0
	if len(payments) > 0 {
		target = e.Outstanding(payments)
		offset = 1
	}
	if !target.IsPositive() {
		return clone(payments), ErrNothingToSplit
	}
	if method == "" {
		method = e.Method
	}

	cents := target.Mul(hundred).Round(0).IntPart()
	base := cents / int64(count)
	remainder := cents - base*int64(count)

	out := clone(payments)
	for i := 0; i < count; i++ {
		c := base
		if i == 0 {
			c += remainder
		}
		n, total := i+1, count
		out = append(out, domain.Payment{
			PaymentID:         e.newID(),
			Method:            method,
			Amount:            decimal.New(c, -2),
			Date:              period.AddMonths(e.Date, offset+i),
			Status:            domain.Pending,
			InstallmentNumber: &n,
			TotalInstallments: &total,
		})
	}
	return out, nil
}

// Balance is the outcome of Validate.
type Balance struct {
	Balanced   bool            `json:"balanced"`
	Sum        decimal.Decimal `json:"sum"`
	Difference decimal.Decimal `json:"difference"` // total - sum
	Reason     string          `json:"reason,omitempty"`
}

// Validate checks that payments add up to total. Arithmetic is exact; the
// one-cent tolerance only guards against amounts that were not rounded to cents.
func Validate(payments []domain.Payment, total decimal.Decimal) Balance {
	sum := Sum(payments)
	diff := total.Sub(sum)
	b := Balance{Sum: sum, Difference: diff}

	switch {
	case len(payments) == 0:
		b.Reason = "at least one payment is required"
	case diff.Abs().GreaterThanOrEqual(Tolerance) && diff.IsPositive():
		b.Reason = "payments are short of the transaction amount by " + diff.StringFixed(2)
	case diff.Abs().GreaterThanOrEqual(Tolerance):
		b.Reason = "payments exceed the transaction amount by " + diff.Neg().StringFixed(2)
	default:
		b.Balanced = true
	}
	return b
}

// DeriveStatus computes a transaction status from its payments: PAID when all
// are paid, PENDING when all are pending (or there are none), PARTIAL otherwise.
func DeriveStatus(payments []domain.Payment) domain.PaymentStatus {
	paid := 0
	for _, p := range payments {
		if p.Status == domain.Paid {
			paid++
		}
	}
	switch {
	case len(payments) > 0 && paid == len(payments):
		return domain.Paid
	case paid == 0:
		return domain.Pending
	}
	return domain.Partial
}

// Sum adds up payment amounts.
func Sum(payments []domain.Payment) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

func clone(payments []domain.Payment) []domain.Payment {
	out := make([]domain.Payment, len(payments), len(payments)+1)
	copy(out, payments)
	return out
}
