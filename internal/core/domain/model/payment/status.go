package payment

import (
	"strings"

	"commerce/internal/pkg/errs"
)

// Status represents the recorded state of a payment. Payments have no state
// machine; the ledger records whatever the boundary reports.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the default for a newly recorded payment.
	StatusPending

	// StatusCompleted indicates the payment went through.
	StatusCompleted

	// StatusFailed indicates the payment attempt failed.
	StatusFailed

	// StatusRefunded indicates the amount was returned.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusCompleted: "Completed",
		StatusFailed:    "Failed",
		StatusRefunded:  "Refunded",
	}
}

// StatusFromString parses a payment status name case-insensitively.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks that the Status is one of the defined payment states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
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
