package commands

import (
	"errors"
	"time"

	"commerce/internal/pkg/guard"
)

var ErrFlagDelayedDeliveriesCommandIsNotConstructed = errors.New(
	"FlagDelayedDeliveriesCommand must be created via NewFlagDelayedDeliveriesCommand constructor",
)

// FlagDelayedDeliveriesCommand represents a sweep over deliveries whose
// scheduled date has passed without them arriving.
type FlagDelayedDeliveriesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewFlagDelayedDeliveriesCommand creates a command to flag overdue
// deliveries. A zero asOf means "now".
func NewFlagDelayedDeliveriesCommand(asOf time.Time) (FlagDelayedDeliveriesCommand, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	return FlagDelayedDeliveriesCommand{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FlagDelayedDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrFlagDelayedDeliveriesCommandIsNotConstructed)
}

// AsOf returns the reference time for the overdue check.
func (c FlagDelayedDeliveriesCommand) AsOf() time.Time {
	return c.asOf
}
