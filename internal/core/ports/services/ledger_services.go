package services

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/ledger"
	"github.com/SscSPs/finops_core/internal/core/period"
	"github.com/SscSPs/finops_core/internal/dto"
)

// LedgerSvcFacade defines read operations over the transactions of a period
type LedgerSvcFacade interface {
	// ListTransactions returns one page of the filtered ledger, newest first.
	ListTransactions(ctx context.Context, companyID string, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// Summarize returns income and expense totals per dimension value for the
	// period the cursor points at.
	Summarize(ctx context.Context, companyID string, userID string, cursor period.Cursor, dim ledger.Dimension) ([]ledger.DimensionTotal, error)
}
