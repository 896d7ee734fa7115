// Package queries contains read-only operations for the commerce system.
// Query handlers bypass the domain model and read projections straight from
// the database, following the CQRS split: commands go through aggregates,
// queries do not.
package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetClientOrdersQueryIsNotConstructed = errors.New(
	"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
)

// GetClientOrdersQuery retrieves every order placed by one client.
//
// Example:
//
//	query, _ := NewGetClientOrdersQuery(clientID)
//	handler := NewGetClientOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get client orders: %w", err)
//	}
type GetClientOrdersQuery struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for a client's order history.
func NewGetClientOrdersQuery(clientID kernel.UUID) (GetClientOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientOrdersQuery{}, errs.NewValueIsRequiredError("client")
	}

	return GetClientOrdersQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientID returns the client whose orders are requested.
func (q GetClientOrdersQuery) ClientID() kernel.UUID {
	return q.clientID
}

// GetClientOrdersQueryResponse represents one order in a client's history.
type GetClientOrdersQueryResponse struct {
	ID        kernel.UUID
	Status    string
	Total     decimal.Decimal
	CreatedAt time.Time
}
