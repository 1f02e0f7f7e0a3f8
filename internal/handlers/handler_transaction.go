package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/finops_core/internal/core/ledger"
	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/dto"
	"github.com/SscSPs/finops_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves the ledger listing and transaction writes.
type transactionHandler struct {
	ledgerService      portssvc.LedgerSvcFacade
	transactionService portssvc.TransactionSvcFacade
	now                func() time.Time
}

// registerTransactionRoutes registers routes related to transactions under a company group.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade, txnSvc portssvc.TransactionSvcFacade, now func() time.Time) {
	h := &transactionHandler{ledgerService: ledgerSvc, transactionService: txnSvc, now: now}

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.GET("/summary", h.summarize)
		txns.POST("", h.createTransaction)
		txns.GET("/:transaction_id", h.getTransaction)
		txns.PUT("/:transaction_id", h.updateTransaction)
	}
}

// listTransactions godoc
// @Summary List the ledger for a period
// @Description Lists transactions inside the selected period, newest first, with optional text, kind, status, account and cost center filters. Rows with unusable data are reported separately.
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param anchor query string false "Anchor date (YYYY-MM-DD)"
// @Param granularity query string false "WEEK, MONTH, SEMESTER, YEAR or ALL"
// @Param q query string false "Case-insensitive text matched against description and category"
// @Param kind query string false "INCOME or EXPENSE"
// @Param status query string false "PAID, PENDING or PARTIAL"
// @Param accountID query string false "Account ID"
// @Param costCenterID query string false "Cost center ID"
// @Param limit query int false "Page size (default 50)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind list transactions query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListTransactions(c.Request.Context(), companyID, userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// summarize godoc
// @Summary Totals per account, cost center or category
// @Description Groups the transactions of a period by the chosen dimension and returns income, expense and net per group.
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param anchor query string false "Anchor date (YYYY-MM-DD)"
// @Param granularity query string false "WEEK, MONTH, SEMESTER, YEAR or ALL"
// @Param dimension query string false "ACCOUNT, COST_CENTER or CATEGORY (default CATEGORY)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Failed to summarize transactions"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/summary [get]
func (h *transactionHandler) summarize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind summary query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	cursor, err := params.Cursor(h.now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	periodResp, err := dto.ToPeriodResponse(cursor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dim := ledger.Dimension(params.Dimension)
	totals, err := h.ledgerService.Summarize(c.Request.Context(), companyID, userID, cursor, dim)
	if err != nil {
		respondError(c, logger, err, "Failed to summarize transactions")
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{Period: periodResp, Dimension: dim, Totals: totals})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	transactionID := c.Param("transaction_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), companyID, transactionID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an income or expense with either a single payment or a split payment list. Split payments must add up to the amount.
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 422 {object} map[string]string "Payments do not balance"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID), slog.String("status", string(txn.Status)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces a transaction and its payments. Account balances are adjusted by the difference.
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Param transaction body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 422 {object} map[string]string "Payments do not balance"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	transactionID := c.Param("transaction_id")

	userID, ok := requireUser(c, logger)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), companyID, transactionID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
