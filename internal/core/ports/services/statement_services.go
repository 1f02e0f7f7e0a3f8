package services

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/core/period"
)

// StatementReaderSvc defines read operations for statement templates
type StatementReaderSvc interface {
	// ListTemplates returns the statement templates of a company.
	ListTemplates(ctx context.Context, companyID string, userID string) ([]domain.StatementTemplate, error)
}

// StatementGeneratorSvc defines statement computation
type StatementGeneratorSvc interface {
	// GenerateStatement computes every line of a template for the period the
	// cursor points at. percentBaseLineID selects the line percentages are
	// relative to; empty means the first REVENUE line.
	GenerateStatement(ctx context.Context, companyID string, templateID string, cursor period.Cursor, percentBaseLineID string, userID string) (*domain.StatementReport, error)
}

// StatementSvcFacade combines all statement-related service interfaces
type StatementSvcFacade interface {
	StatementReaderSvc
	StatementGeneratorSvc
}
