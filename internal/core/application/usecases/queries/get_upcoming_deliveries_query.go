package queries

import (
	"errors"
	"time"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrGetUpcomingDeliveriesQueryIsNotConstructed = errors.New(
	"GetUpcomingDeliveriesQuery must be created via NewGetUpcomingDeliveriesQuery constructor",
)

// GetUpcomingDeliveriesQuery retrieves deliveries scheduled inside a date
// window, bounds inclusive.
type GetUpcomingDeliveriesQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetUpcomingDeliveriesQuery creates a query for deliveries scheduled
// between from and to. The window must not be inverted.
func NewGetUpcomingDeliveriesQuery(from, to time.Time) (GetUpcomingDeliveriesQuery, error) {
	if from.IsZero() || to.IsZero() {
		return GetUpcomingDeliveriesQuery{}, errs.NewValueIsRequiredError("date range")
	}
	if to.Before(from) {
		return GetUpcomingDeliveriesQuery{}, errs.NewValueIsInvalidError("date range")
	}

	return GetUpcomingDeliveriesQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUpcomingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetUpcomingDeliveriesQueryIsNotConstructed)
}

// From returns the window start.
func (q GetUpcomingDeliveriesQuery) From() time.Time {
	return q.from
}

// To returns the window end.
func (q GetUpcomingDeliveriesQuery) To() time.Time {
	return q.to
}
