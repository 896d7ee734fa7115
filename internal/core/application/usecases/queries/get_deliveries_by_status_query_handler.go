package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"commerce/internal/core/domain/model/kernel"
)

// GetDeliveriesByStatusQueryHandler reads deliveries filtered by workflow
// status.
type GetDeliveriesByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByStatusQueryHandler creates a handler for status-filtered
// delivery queries.
func NewGetDeliveriesByStatusQueryHandler(db *gorm.DB) GetDeliveriesByStatusQueryHandler {
	return GetDeliveriesByStatusQueryHandler{db: db}
}

// Handle executes the query and returns the matching deliveries.
func (h GetDeliveriesByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByStatusQuery,
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
		WHERE status = ?
		ORDER BY scheduled_at NULLS LAST, id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDeliveryRows(rows)
}

func scanDeliveryRows(rows *sql.Rows) ([]DeliveryQueryResponse, error) {
	deliveries := make([]DeliveryQueryResponse, 0)

	for rows.Next() {
		var resp DeliveryQueryResponse
		var id, orderID uuid.UUID
		var transporterID uuid.NullUUID
		var scheduledAt sql.NullTime

		err := rows.Scan(&id, &orderID, &transporterID, &scheduledAt, &resp.Address, &resp.Cost, &resp.Status)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if transporterID.Valid {
			tid, idErr := kernel.UUIDFromBytes(transporterID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.TransporterID = &tid
		}
		if scheduledAt.Valid {
			at := scheduledAt.Time.In(time.UTC)
			resp.ScheduledAt = &at
		}
		deliveries = append(deliveries, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
