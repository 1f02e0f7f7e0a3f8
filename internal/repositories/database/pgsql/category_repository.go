package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finops_core/internal/core/domain"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	"github.com/SscSPs/finops_core/internal/models"
	"github.com/SscSPs/finops_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	pool *pgxpool.Pool
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{pool: pool}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// ListCategories returns all categories of a company, inactive ones included.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, companyID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, company_id, name, kind, is_active
		FROM categories
		WHERE company_id = $1
		ORDER BY name, category_id;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for company %s: %w", companyID, err)
	}
	cats, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories for company %s: %w", companyID, err)
	}
	return mapping.ToDomainCategorySlice(cats), nil
}

type PgxCostCenterRepository struct {
	pool *pgxpool.Pool
}

func newPgxCostCenterRepository(pool *pgxpool.Pool) *PgxCostCenterRepository {
	return &PgxCostCenterRepository{pool: pool}
}

var _ portsrepo.CostCenterRepositoryFacade = (*PgxCostCenterRepository)(nil)

// ListCostCenters returns all cost centers of a company.
func (r *PgxCostCenterRepository) ListCostCenters(ctx context.Context, companyID string) ([]domain.CostCenter, error) {
	query := `
		SELECT cost_center_id, company_id, name, is_active
		FROM cost_centers
		WHERE company_id = $1
		ORDER BY name, cost_center_id;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers for company %s: %w", companyID, err)
	}
	ccs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CostCenter])
	if err != nil {
		return nil, fmt.Errorf("failed to scan cost centers for company %s: %w", companyID, err)
	}
	return mapping.ToDomainCostCenterSlice(ccs), nil
}
