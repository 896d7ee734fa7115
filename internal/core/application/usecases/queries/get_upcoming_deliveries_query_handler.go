package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUpcomingDeliveriesQueryHandler reads deliveries scheduled inside a
// date window. Shares the row shape with the status query.
type GetUpcomingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetUpcomingDeliveriesQueryHandler creates a handler for scheduled
// delivery queries.
func NewGetUpcomingDeliveriesQueryHandler(db *gorm.DB) GetUpcomingDeliveriesQueryHandler {
	return GetUpcomingDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns deliveries inside the window,
// soonest first.
func (h GetUpcomingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetUpcomingDeliveriesQuery,
) ([]DeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			transporter_id,
			scheduled_at,
			address,
			cost,
			status
		FROM deliveries
		WHERE scheduled_at BETWEEN ? AND ?
		ORDER BY scheduled_at, id
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryRows(rows)
}
