package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"commerce/internal/core/domain/model/kernel"
)

// SearchProductsQueryHandler searches the catalog by product name.
type SearchProductsQueryHandler struct {
	db *gorm.DB
}

// NewSearchProductsQueryHandler creates a handler for product searches.
func NewSearchProductsQueryHandler(db *gorm.DB) SearchProductsQueryHandler {
	return SearchProductsQueryHandler{db: db}
}

// Handle executes the search and returns matching products sorted by name.
func (h SearchProductsQueryHandler) Handle(
	ctx context.Context,
	query SearchProductsQuery,
) ([]SearchProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]SearchProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			stock
		FROM products
		WHERE name ILIKE ?
		ORDER BY name, id
	`, "%"+query.Term()+"%").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp SearchProductsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Price, &resp.Stock); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
