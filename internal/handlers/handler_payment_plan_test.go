package handlers

import (
	"net/http"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/shopspring/decimal"
)

func planAmounts(resp dto.PaymentPlanResponse) []string {
	out := make([]string, len(resp.Payments))
	for i, p := range resp.Payments {
		out[i] = p.Amount.StringFixed(2)
	}
	return out
}

func (suite *HandlerTestSuite) TestPaymentPlan_Installments() {
	body := map[string]any{"amount": "100", "date": "2024-01-31", "method": "card", "count": 3}

	w := suite.do(http.MethodPost, "/api/v1/payment-plan/installments", body)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.PaymentPlanResponse
	suite.decode(w, &resp)
	suite.True(resp.Split)
	suite.Equal([]string{"33.34", "33.33", "33.33"}, planAmounts(resp))
	suite.Equal([]string{"2024-01-31", "2024-02-29", "2024-03-31"}, []string{resp.Payments[0].Date, resp.Payments[1].Date, resp.Payments[2].Date})
	suite.True(resp.Balance.Balanced)
	suite.Equal(domain.Pending, resp.Status)
	suite.Equal(3, *resp.Payments[2].TotalInstallments)
}

func (suite *HandlerTestSuite) TestPaymentPlan_InstallmentsRejectsBadCount() {
	for _, count := range []int{0, -2, 361} {
		body := map[string]any{"amount": "100", "date": "2024-01-31", "count": count}
		w := suite.do(http.MethodPost, "/api/v1/payment-plan/installments", body)
		suite.Equal(http.StatusBadRequest, w.Code, "count %d", count)
	}
}

func (suite *HandlerTestSuite) TestPaymentPlan_InstallmentsNothingOutstanding() {
	body := map[string]any{
		"amount": "100", "date": "2024-01-31", "count": 2,
		"payments": []map[string]any{{"paymentID": "p1", "amount": "100", "date": "2024-01-31", "status": "PAID"}},
	}
	w := suite.do(http.MethodPost, "/api/v1/payment-plan/installments", body)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestPaymentPlan_ToggleSplit() {
	w := suite.do(http.MethodPost, "/api/v1/payment-plan/split", map[string]any{"amount": "250.50", "date": "2024-04-01", "split": true})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var on dto.PaymentPlanResponse
	suite.decode(w, &on)
	suite.True(on.Split)
	suite.Equal([]string{"250.50"}, planAmounts(on))
	suite.True(on.Balance.Balanced)

	w = suite.do(http.MethodPost, "/api/v1/payment-plan/split", map[string]any{"amount": "250.50", "date": "2024-04-01", "status": "PAID", "split": false})
	suite.Require().Equal(http.StatusOK, w.Code)

	var off dto.PaymentPlanResponse
	suite.decode(w, &off)
	suite.False(off.Split)
	suite.Require().Len(off.Payments, 1)
	suite.Equal(domain.Paid, off.Status)
}

func (suite *HandlerTestSuite) TestPaymentPlan_SingleWithoutStatusIsPaid() {
	w := suite.do(http.MethodPost, "/api/v1/payment-plan/split", map[string]any{"amount": "75", "date": "2024-04-01", "split": false})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.PaymentPlanResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp.Payments, 1)
	suite.Equal(domain.Paid, resp.Payments[0].Status)
	suite.Equal(domain.Paid, resp.Status)
}

func (suite *HandlerTestSuite) TestPaymentPlan_AddAndRemoveRows() {
	rows := []map[string]any{{"paymentID": "p1", "amount": "150", "date": "2024-01-31", "status": "PAID"}}

	w := suite.do(http.MethodPost, "/api/v1/payment-plan/rows", map[string]any{"amount": "200", "date": "2024-01-31", "payments": rows})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var added dto.PaymentPlanResponse
	suite.decode(w, &added)
	suite.Equal([]string{"150.00", "50.00"}, planAmounts(added))
	suite.Equal(domain.Partial, added.Status)

	w = suite.do(http.MethodPost, "/api/v1/payment-plan/rows/remove", map[string]any{"amount": "200", "date": "2024-01-31", "payments": rows, "paymentID": "p1"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var removed dto.PaymentPlanResponse
	suite.decode(w, &removed)
	suite.Empty(removed.Payments)
	suite.False(removed.Balance.Balanced)
}

func (suite *HandlerTestSuite) TestPaymentPlan_Validate() {
	body := map[string]any{
		"amount": "100", "date": "2024-01-31",
		"payments": []map[string]any{
			{"amount": "60", "date": "2024-01-31", "status": "PAID"},
			{"amount": "39", "date": "2024-02-29", "status": "PENDING"},
		},
	}
	w := suite.do(http.MethodPost, "/api/v1/payment-plan/validate", body)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.PaymentPlanResponse
	suite.decode(w, &resp)
	suite.False(resp.Balance.Balanced)
	suite.True(resp.Balance.Difference.Equal(decimal.NewFromInt(1)))
	suite.Contains(resp.Balance.Reason, "short of the transaction amount by 1.00")
	suite.Equal(domain.Partial, resp.Status)
}

func (suite *HandlerTestSuite) TestPaymentPlan_RequiresAuth() {
	w := suite.doWithToken(http.MethodPost, "/api/v1/payment-plan/validate", map[string]any{"amount": "1", "date": "2024-01-31"}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}
