package repositories

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
)

// CategoryRepositoryFacade defines read operations for transaction categories.
type CategoryRepositoryFacade interface {
	// ListCategories returns every category of a company. Inactive categories
	// are included so historic transactions still resolve by id.
	ListCategories(ctx context.Context, companyID string) ([]domain.Category, error)
}

// CostCenterRepositoryFacade defines read operations for cost centers.
type CostCenterRepositoryFacade interface {
	ListCostCenters(ctx context.Context, companyID string) ([]domain.CostCenter, error)
}
