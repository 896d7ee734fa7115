package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrSearchProductsQueryIsNotConstructed = errors.New(
	"SearchProductsQuery must be created via NewSearchProductsQuery constructor",
)

// SearchProductsQuery retrieves products whose name contains a term,
// matched case-insensitively.
type SearchProductsQuery struct {
	term string

	guard guard.ConstructorGuard
}

// NewSearchProductsQuery creates a product search query.
// The search term must be non-empty.
func NewSearchProductsQuery(term string) (SearchProductsQuery, error) {
	if term == "" {
		return SearchProductsQuery{}, errs.NewValueIsRequiredError("term")
	}

	return SearchProductsQuery{
		term:  term,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchProductsQuery) Validate() error {
	return q.guard.Validate(ErrSearchProductsQueryIsNotConstructed)
}

// Term returns the search term.
func (q SearchProductsQuery) Term() string {
	return q.term
}

// SearchProductsQueryResponse represents one matching product.
type SearchProductsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Price decimal.Decimal
	Stock int
}
