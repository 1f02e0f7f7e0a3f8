package repositories

import (
	"context"

	"github.com/SscSPs/finops_core/internal/core/domain"
)

// MembershipReader looks up a user's role within a company.
type MembershipReader interface {
	// FindUserRole returns apperrors.ErrNotFound when the user is not a member.
	FindUserRole(ctx context.Context, companyID string, userID string) (domain.CompanyRole, error)
}
