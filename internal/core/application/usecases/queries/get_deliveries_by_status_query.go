package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/delivery"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetDeliveriesByStatusQueryIsNotConstructed = errors.New(
	"GetDeliveriesByStatusQuery must be created via NewGetDeliveriesByStatusQuery constructor",
)

// GetDeliveriesByStatusQuery retrieves every delivery in one workflow status.
type GetDeliveriesByStatusQuery struct {
	status delivery.Status

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByStatusQuery creates a query for deliveries in a status.
func NewGetDeliveriesByStatusQuery(status delivery.Status) (GetDeliveriesByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetDeliveriesByStatusQuery{}, err
	}

	return GetDeliveriesByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByStatusQueryIsNotConstructed)
}

// Status returns the requested workflow status.
func (q GetDeliveriesByStatusQuery) Status() delivery.Status {
	return q.status
}

// DeliveryQueryResponse represents one delivery row.
type DeliveryQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	TransporterID *kernel.UUID
	ScheduledAt   *time.Time
	Address       string
	Cost          decimal.Decimal
	Status        string
}
