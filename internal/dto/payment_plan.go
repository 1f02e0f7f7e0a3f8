package dto

import (
	"time"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/payment"
	"github.com/shopspring/decimal"
)

// PaymentPlanRequest is the current state of the payment section of the
// transaction form. The payment-plan endpoints are stateless: each call
// receives the state and returns the next one.
type PaymentPlanRequest struct {
	Amount   decimal.Decimal      `json:"amount" binding:"required,money"`
	Date     string               `json:"date" binding:"required,datetime=2006-01-02"`
	Method   string               `json:"method"`
	Status   domain.PaymentStatus `json:"status" binding:"omitempty,oneof=PAID PENDING"`
	Payments []PaymentRequest     `json:"payments" binding:"omitempty,dive"`
}

// Editor builds the reconciler state from the request.
func (r PaymentPlanRequest) Editor() (*payment.Editor, []domain.Payment, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return nil, nil, err
	}
	payments, err := ToPayments(r.Payments)
	if err != nil {
		return nil, nil, err
	}
	return payment.NewEditor(r.Amount, date, r.Method, r.Status), payments, nil
}

// ToggleSplitRequest switches the form between single and split payment.
type ToggleSplitRequest struct {
	PaymentPlanRequest
	Split bool `json:"split"`
}

// RemoveRowRequest removes one payment row.
type RemoveRowRequest struct {
	PaymentPlanRequest
	PaymentID string `json:"paymentID" binding:"required"`
}

// InstallmentsRequest generates monthly installments. InstallmentMethod
// defaults to the form's Method.
type InstallmentsRequest struct {
	PaymentPlanRequest
	Count             int    `json:"count" binding:"max=360"`
	InstallmentMethod string `json:"installmentMethod"`
}

// PaymentPlanResponse is the next form state together with its balance check
// and the transaction status it would derive.
type PaymentPlanResponse struct {
	Split    bool                 `json:"split"`
	Payments []PaymentResponse    `json:"payments"`
	Balance  payment.Balance      `json:"balance"`
	Status   domain.PaymentStatus `json:"status"`
}

// ToPaymentPlanResponse evaluates a payment list against the transaction amount.
func ToPaymentPlanResponse(split bool, payments []domain.Payment, amount decimal.Decimal) PaymentPlanResponse {
	return PaymentPlanResponse{
		Split:    split,
		Payments: ToPaymentResponses(payments),
		Balance:  payment.Validate(payments, amount.Round(2)),
		Status:   payment.DeriveStatus(payments),
	}
}
