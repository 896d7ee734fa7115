package order

import (
	"strings"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a
// table-driven state machine; Delivered and Cancelled are terminal.
//
// State transitions:
//
//	Pending ──> Validated ──> Preparing ──> Shipped ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──────> Cancelled
//
// Delivery completion additionally forces an order into Delivered through
// Order.ForceDeliver, outside this table. That bypass is deliberate and
// documented there.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at admission.
	Pending

	// Validated indicates the order passed the post-admission validation step.
	Validated

	// Preparing indicates the order is being picked and packed.
	Preparing

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal abort state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Validated: "Validated",
		Preparing: "Preparing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// allowedTransitions is the single source of truth for legal order status
// changes. A status absent from the map, or mapped to an empty set, has no
// outgoing transitions.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Validated, Cancelled},
		Validated: {Preparing, Cancelled},
		Preparing: {Shipped, Cancelled},
		Shipped:   {Delivered},
	}
}

// StatusFromString parses a status name case-insensitively. It accepts the
// canonical names used on the wire ("PENDING", "Validated", ...).
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks that the Status is one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the (s, next) pair appears in the
// transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo applies the state machine. It returns the next status when
// the transition is legal and an InvalidTransitionError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}
