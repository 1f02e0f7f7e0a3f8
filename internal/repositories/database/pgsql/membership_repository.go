package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	"github.com/SscSPs/finops_core/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMembershipRepository struct {
	pool *pgxpool.Pool
}

func newPgxMembershipRepository(pool *pgxpool.Pool) *PgxMembershipRepository {
	return &PgxMembershipRepository{pool: pool}
}

var _ portsrepo.MembershipReader = (*PgxMembershipRepository)(nil)

// FindUserRole returns the role of a user inside a company, or ErrNotFound
// when the user is not a member.
func (r *PgxMembershipRepository) FindUserRole(ctx context.Context, companyID string, userID string) (domain.CompanyRole, error) {
	query := `SELECT company_id, user_id, role FROM company_members WHERE company_id = $1 AND user_id = $2`

	rows, err := r.pool.Query(ctx, query, companyID, userID)
	if err != nil {
		return "", fmt.Errorf("failed to query membership of user %s: %w", userID, err)
	}
	member, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CompanyMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find role of user %s in company %s: %w", userID, companyID, err)
	}
	return domain.CompanyRole(member.Role), nil
}
