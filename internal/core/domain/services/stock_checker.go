// Package services contains stateless domain services that coordinate logic
// across aggregates without owning state themselves.
package services

import (
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
)

// StockChecker verifies that current stock covers a candidate order's lines.
//
// The check aggregates requested quantities per distinct product first, so
// two lines for the same product are judged against their combined total,
// and it collects every product with insufficient stock before failing:
// the caller gets one error naming all of them, not just the first.
//
// This is a read-only availability check. Nothing is reserved; the actual
// debit happens later, at delivery completion, where it may still fail.
type StockChecker struct{}

// NewStockChecker creates a StockChecker.
func NewStockChecker() StockChecker {
	return StockChecker{}
}

// RequiredQuantities returns the total requested quantity per distinct
// product across the given lines, plus the product IDs in order of first
// appearance so callers can produce deterministic output.
func (StockChecker) RequiredQuantities(lines []*order.Line) (map[kernel.UUID]int, []kernel.UUID) {
	quantities := make(map[kernel.UUID]int, len(lines))
	ids := make([]kernel.UUID, 0, len(lines))

	for _, l := range lines {
		id := l.ProductID()
		if _, seen := quantities[id]; !seen {
			ids = append(ids, id)
		}
		quantities[id] += l.Quantity()
	}

	return quantities, ids
}

// EnsureAvailable checks every line's aggregated quantity against the given
// products. A product missing from the map counts as insufficient. When any
// product falls short the returned InsufficientStockError names all of them.
func (c StockChecker) EnsureAvailable(
	lines []*order.Line,
	products map[kernel.UUID]*product.Product,
) error {
	quantities, ids := c.RequiredQuantities(lines)

	var insufficient []string
	for _, id := range ids {
		p, ok := products[id]
		if !ok {
			insufficient = append(insufficient, "ID: "+id.String())
			continue
		}
		if !p.HasStock(quantities[id]) {
			insufficient = append(insufficient, p.Name())
		}
	}

	if len(insufficient) > 0 {
		return errs.NewInsufficientStockError(insufficient...)
	}
	return nil
}
