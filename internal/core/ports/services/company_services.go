package services

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
)

// CompanyAuthorizerSvc defines operations for company authorization
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has at least the required role in a company.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error
}
