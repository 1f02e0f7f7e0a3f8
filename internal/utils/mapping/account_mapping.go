package mapping

import (
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		IsActive:    m.IsActive,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainCostCenterSlice converts model cost centers to domain cost centers
func ToDomainCostCenterSlice(ms []models.CostCenter) []domain.CostCenter {
	ds := make([]domain.CostCenter, len(ms))
	for i, m := range ms {
		ds[i] = domain.CostCenter{
			CostCenterID: m.CostCenterID,
			CompanyID:    m.CompanyID,
			Name:         m.Name,
			IsActive:     m.IsActive,
		}
	}
	return ds
}

// ToDomainCategorySlice converts model categories to domain categories
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = domain.Category{
			CategoryID: m.CategoryID,
			CompanyID:  m.CompanyID,
			Name:       m.Name,
			Kind:       domain.TransactionKind(m.Kind),
			IsActive:   m.IsActive,
		}
	}
	return ds
}
