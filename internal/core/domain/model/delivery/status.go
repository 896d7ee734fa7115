package delivery

import (
	"strings"

	"commerce/internal/pkg/errs"
)

// Status represents the state of a delivery.
//
// Unlike order.Status there is deliberately no transition table: any
// membership-valid value may replace any other. The asymmetry mirrors the
// system this one models, where delivery status was always free-form; a
// delivery can go Delayed -> EnRoute -> Delayed or even Cancelled ->
// EnRoute without complaint. Only the transition into Delivered carries a
// side effect, handled by the delivery workflow.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the default status for a newly created delivery.
	Pending

	// EnRoute indicates the delivery is on its way.
	EnRoute

	// Delivered indicates the delivery reached its destination. Entering
	// this status triggers the stock debit and order force-completion.
	Delivered

	// Delayed indicates the delivery missed its scheduled date.
	Delayed

	// Cancelled indicates the delivery was aborted.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		EnRoute:   "EnRoute",
		Delivered: "Delivered",
		Delayed:   "Delayed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a status name case-insensitively.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks that the Status is one of the defined delivery states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
