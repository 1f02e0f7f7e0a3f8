package mapping

import (
	"github.com/SscSPs/finops_core/internal/core/domain"
	"github.com/SscSPs/finops_core/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Payments are converted separately with ToModelPayments.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CompanyID:       d.CompanyID,
		TransactionDate: d.Date,
		Description:     d.Description,
		Amount:          d.Amount,
		Kind:            string(d.Kind),
		CategoryID:      d.CategoryID,
		CategoryName:    d.CategoryName,
		AccountID:       d.AccountID,
		CostCenterID:    d.CostCenterID,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction and its payment rows to a
// domain Transaction.
func ToDomainTransaction(m models.Transaction, payments []models.Payment) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		CompanyID:     m.CompanyID,
		Date:          m.TransactionDate,
		Description:   m.Description,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		CategoryID:    m.CategoryID,
		CategoryName:  m.CategoryName,
		AccountID:     m.AccountID,
		CostCenterID:  m.CostCenterID,
		Status:        domain.PaymentStatus(m.Status),
		Payments:      ToDomainPayments(payments),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayments converts the payments of a transaction, recording their order.
func ToModelPayments(transactionID string, ps []domain.Payment) []models.Payment {
	ms := make([]models.Payment, len(ps))
	for i, p := range ps {
		ms[i] = models.Payment{
			PaymentID:         p.PaymentID,
			TransactionID:     transactionID,
			Position:          i,
			Method:            p.Method,
			Amount:            p.Amount,
			PaymentDate:       p.Date,
			Status:            string(p.Status),
			InstallmentNumber: p.InstallmentNumber,
			TotalInstallments: p.TotalInstallments,
		}
	}
	return ms
}

// ToDomainPayments converts payment rows, assumed to be sorted by position.
func ToDomainPayments(ms []models.Payment) []domain.Payment {
	ps := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ps[i] = domain.Payment{
			PaymentID:         m.PaymentID,
			TransactionID:     m.TransactionID,
			Method:            m.Method,
			Amount:            m.Amount,
			Date:              m.PaymentDate,
			Status:            domain.PaymentStatus(m.Status),
			InstallmentNumber: m.InstallmentNumber,
			TotalInstallments: m.TotalInstallments,
		}
	}
	return ps
}
