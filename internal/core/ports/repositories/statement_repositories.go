package repositories

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
)

// StatementRepositoryFacade defines read operations for statement templates.
type StatementRepositoryFacade interface {
	// ListTemplates returns the templates of a company without their lines.
	ListTemplates(ctx context.Context, companyID string) ([]domain.StatementTemplate, error)

	// FindTemplateByID returns a template header without its lines.
	FindTemplateByID(ctx context.Context, companyID string, templateID string) (*domain.StatementTemplate, error)

	// ListLines returns the lines of a template with their mappings, ordered
	// by position.
	ListLines(ctx context.Context, templateID string) ([]domain.StatementLine, error)
}
