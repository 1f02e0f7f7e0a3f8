package domain

// Category classifies transactions; statement lines map categories into buckets.
type Category struct {
	CategoryID string          `json:"categoryID"`
	CompanyID  string          `json:"companyID"`
	Name       string          `json:"name"`
	Kind       TransactionKind `json:"kind"`
	IsActive   bool            `json:"isActive"`
}
