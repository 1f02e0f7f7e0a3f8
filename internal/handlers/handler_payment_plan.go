package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/payment"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/SscSPs/finops_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentPlanHandler exposes the payment reconciler to the transaction form.
// It is stateless: every request carries the current form state.
type paymentPlanHandler struct{}

func registerPaymentPlanRoutes(rg *gin.RouterGroup) {
	h := &paymentPlanHandler{}

	plan := rg.Group("/payment-plan")
	{
		plan.POST("/split", h.toggleSplit)
		plan.POST("/rows", h.addRow)
		plan.POST("/rows/remove", h.removeRow)
		plan.POST("/installments", h.generateInstallments)
		plan.POST("/validate", h.validate)
	}
}

// bindPlan binds the JSON body into req and builds the reconciler state from
// its plan section. It answers 400 and returns ok=false on failure.
func bindPlan(c *gin.Context, req any, plan *dto.PaymentPlanRequest) (*payment.Editor, []domain.Payment, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed to bind payment plan request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return nil, nil, false
	}
	editor, payments, err := plan.Editor()
	if err != nil {
		logger.Warn("Invalid payment plan state", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return editor, payments, true
}

// toggleSplit godoc
// @Summary Switch between single and split payment
// @Description Entering split mode seeds one payment for the full amount (or keeps existing rows). Leaving it returns the single payment.
// @Tags payment-plan
// @Accept json
// @Produce json
// @Param request body dto.ToggleSplitRequest true "Form state"
// @Success 200 {object} dto.PaymentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payment-plan/split [post]
func (h *paymentPlanHandler) toggleSplit(c *gin.Context) {
	var req dto.ToggleSplitRequest
	editor, payments, ok := bindPlan(c, &req, &req.PaymentPlanRequest)
	if !ok {
		return
	}

	next := editor.ToggleSplit(payments, req.Split)
	if !req.Split {
		next = editor.Single()
	}
	c.JSON(http.StatusOK, dto.ToPaymentPlanResponse(req.Split, next, req.Amount))
}

// addRow godoc
// @Summary Add a payment row
// @Description Appends a pending payment for the outstanding difference, never below zero.
// @Tags payment-plan
// @Accept json
// @Produce json
// @Param request body dto.PaymentPlanRequest true "Form state"
// @Success 200 {object} dto.PaymentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payment-plan/rows [post]
func (h *paymentPlanHandler) addRow(c *gin.Context) {
	var req dto.PaymentPlanRequest
	editor, payments, ok := bindPlan(c, &req, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPlanResponse(true, editor.AddRow(payments), req.Amount))
}

// removeRow godoc
// @Summary Remove a payment row
// @Tags payment-plan
// @Accept json
// @Produce json
// @Param request body dto.RemoveRowRequest true "Form state and the row to remove"
// @Success 200 {object} dto.PaymentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payment-plan/rows/remove [post]
func (h *paymentPlanHandler) removeRow(c *gin.Context) {
	var req dto.RemoveRowRequest
	_, payments, ok := bindPlan(c, &req, &req.PaymentPlanRequest)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPlanResponse(true, payment.RemoveRow(payments, req.PaymentID), req.Amount))
}

// generateInstallments godoc
// @Summary Generate monthly installments
// @Description Splits the amount (or the outstanding remainder when rows exist) into monthly installments whose sum is exact to the cent.
// @Tags payment-plan
// @Accept json
// @Produce json
// @Param request body dto.InstallmentsRequest true "Form state and installment count"
// @Success 200 {object} dto.PaymentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input or nothing left to split"
// @Security BearerAuth
// @Router /payment-plan/installments [post]
func (h *paymentPlanHandler) generateInstallments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InstallmentsRequest
	editor, payments, ok := bindPlan(c, &req, &req.PaymentPlanRequest)
	if !ok {
		return
	}

	next, err := editor.GenerateInstallments(payments, req.Count, req.InstallmentMethod)
	if err != nil {
		if !errors.Is(err, payment.ErrInvalidInstallmentCount) && !errors.Is(err, payment.ErrNothingToSplit) {
			logger.Error("Failed to generate installments", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate installments"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Debug("Generated installments", slog.Int("count", req.Count), slog.Int("rows", len(next)))
	c.JSON(http.StatusOK, dto.ToPaymentPlanResponse(true, next, req.Amount))
}

// validate godoc
// @Summary Check that payments add up
// @Description Reports whether the payments sum to the amount and the transaction status they would derive.
// @Tags payment-plan
// @Accept json
// @Produce json
// @Param request body dto.PaymentPlanRequest true "Form state"
// @Success 200 {object} dto.PaymentPlanResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payment-plan/validate [post]
func (h *paymentPlanHandler) validate(c *gin.Context) {
	var req dto.PaymentPlanRequest
	_, payments, ok := bindPlan(c, &req, &req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentPlanResponse(len(payments) > 0, payments, req.Amount))
}
