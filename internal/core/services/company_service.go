package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/finops_core/internal/apperrors"
	"github.com/SscSPs/finops_core/internal/core/domain"
	portsrepo "github.com/SscSPs/finops_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finops_core/internal/core/ports/services"
	"github.com/SscSPs/finops_core/internal/middleware"
)

// CompanyAuthorizer checks company membership roles.
type CompanyAuthorizer struct {
	membershipRepo portsrepo.MembershipReader
}

// NewCompanyAuthorizer creates a new CompanyAuthorizer.
func NewCompanyAuthorizer(repo portsrepo.MembershipReader) *CompanyAuthorizer {
	return &CompanyAuthorizer{membershipRepo: repo}
}

var _ portssvc.CompanyAuthorizerSvc = (*CompanyAuthorizer)(nil)

// AuthorizeUserAction checks if a user has the required role (or higher) within a company.
// Returns apperrors.ErrNotFound if the user is not a member, so company
// existence is not revealed, and apperrors.ErrForbidden if the role is too low.
func (s *CompanyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	role, err := s.membershipRepo.FindUserRole(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Authorization failed: user is not a member of the company", slog.String("user_id", userID), slog.String("company_id", companyID))
			return apperrors.ErrNotFound
		}
		logger.Error("Failed to check user company role in repository", slog.String("error", err.Error()), slog.String("user_id", userID), slog.String("company_id", companyID))
		return fmt.Errorf("failed to check authorization: %w", err)
	}

	if !role.Allows(requiredRole) {
		logger.Warn("Authorization failed: insufficient role",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("role", string(role)),
			slog.String("required_role", string(requiredRole)))
		return fmt.Errorf("%w: role %s required", apperrors.ErrForbidden, requiredRole)
	}
	return nil
}
