package statement

import (
	"strings"

	"github.com/SscSPs/finops_core/internal/core/domain"
)

// Catalog indexes the company's current categories and accounts for
// mapping validation and transaction resolution.
type Catalog struct {
	categories     map[string]domain.Category
	categoryByName map[string][]string
	accounts       map[string]domain.Account
}

// NewCatalog builds a Catalog. Inactive entries stay resolvable: deactivating a
// category must not drop its history from statements.
func NewCatalog(categories []domain.Category, accounts []domain.Account) *Catalog {
	c := &Catalog{
		categories:     make(map[string]domain.Category, len(categories)),
		categoryByName: make(map[string][]string, len(categories)),
		accounts:       make(map[string]domain.Account, len(accounts)),
	}
	for _, cat := range categories {
		c.categories[cat.CategoryID] = cat
		key := normalizeName(cat.Name)
		if key != "" {
			c.categoryByName[key] = append(c.categoryByName[key], cat.CategoryID)
		}
	}
	for _, acc := range accounts {
		c.accounts[acc.AccountID] = acc
	}
	return c
}

// HasCategory reports whether id is a known category.
func (c *Catalog) HasCategory(id string) bool {
	_, ok := c.categories[id]
	return ok
}

// HasAccount reports whether id is a known account.
func (c *Catalog) HasAccount(id string) bool {
	_, ok := c.accounts[id]
	return ok
}

// CategoryName returns the current name of a category, or "" when unknown.
func (c *Catalog) CategoryName(id string) string {
	return c.categories[id].Name
}

// AccountName returns the current name of an account, or "" when unknown.
func (c *Catalog) AccountName(id string) string {
	return c.accounts[id].Name
}

// ResolveCategory finds the category a transaction belongs to. The recorded id
// wins; when it no longer exists (renamed or deleted and recreated) the
// recorded name is matched ignoring case and spacing. Among several categories
// with the same name, one of the transaction's kind is preferred.
func (c *Catalog) ResolveCategory(t domain.Transaction) (string, bool) {
	if t.CategoryID != "" {
		if _, ok := c.categories[t.CategoryID]; ok {
			return t.CategoryID, true
		}
	}
	candidates := c.categoryByName[normalizeName(t.CategoryName)]
	if len(candidates) == 0 {
		return "", false
	}
	for _, id := range candidates {
		if c.categories[id].Kind == t.Kind {
			return id, true
		}
	}
	return candidates[0], true
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
