package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	"github.com/SscSPs/finops_core/internal/models"
	"github.com/SscSPs/finops_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStatementRepository struct {
	pool *pgxpool.Pool
}

func newPgxStatementRepository(pool *pgxpool.Pool) *PgxStatementRepository {
	return &PgxStatementRepository{pool: pool}
}

var _ portsrepo.StatementRepositoryFacade = (*PgxStatementRepository)(nil)

// ListTemplates returns the templates of a company without their lines.
func (r *PgxStatementRepository) ListTemplates(ctx context.Context, companyID string) ([]domain.StatementTemplate, error) {
	query := `SELECT template_id, company_id, name FROM statement_templates WHERE company_id = $1 ORDER BY name, template_id`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statement templates for company %s: %w", companyID, err)
	}
	tpls, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StatementTemplate])
	if err != nil {
		return nil, fmt.Errorf("failed to scan statement templates: %w", err)
	}

	out := make([]domain.StatementTemplate, len(tpls))
	for i, t := range tpls {
		out[i] = mapping.ToDomainTemplate(t)
	}
	return out, nil
}

// FindTemplateByID retrieves a template header of a company.
func (r *PgxStatementRepository) FindTemplateByID(ctx context.Context, companyID string, templateID string) (*domain.StatementTemplate, error) {
	query := `SELECT template_id, company_id, name FROM statement_templates WHERE company_id = $1 AND template_id = $2`

	rows, err := r.pool.Query(ctx, query, companyID, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query statement template %s: %w", templateID, err)
	}
	tpl, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.StatementTemplate])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement template %s: %w", templateID, err)
	}
	d := mapping.ToDomainTemplate(tpl)
	return &d, nil
}

// ListLines returns the lines of a template in display order with their mappings.
func (r *PgxStatementRepository) ListLines(ctx context.Context, templateID string) ([]domain.StatementLine, error) {
	batch := &pgx.Batch{}
	batch.Queue(`
		SELECT line_id, template_id, name, line_type, position, formula
		FROM statement_lines WHERE template_id = $1 ORDER BY position, line_id`, templateID)
	batch.Queue(`
		SELECT template_id, line_id, target_kind, target_id
		FROM statement_line_mappings WHERE template_id = $1 ORDER BY line_id, target_kind, target_id`, templateID)

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	rows, err := br.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of template %s: %w", templateID, err)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StatementLine])
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines of template %s: %w", templateID, err)
	}

	rows, err = br.Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query line mappings of template %s: %w", templateID, err)
	}
	mappings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LineMapping])
	if err != nil {
		return nil, fmt.Errorf("failed to scan line mappings of template %s: %w", templateID, err)
	}

	return mapping.ToDomainLines(lines, mappings), nil
}
