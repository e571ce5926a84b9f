package order

import (
	"fmt"

	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// The lifecycle is a fixed linear progression:
//
//	Pending ──> Preparing ──> Ready ──> Served ──> Paid
//
// The Order record itself accepts any transition between distinct statuses
// (see Order.ChangeStatus); the linear progression above is a policy
// enforced by the dispatch orchestrator. Status provides the ordering
// helpers the orchestrator uses for that policy.
//
// Status is a value object that validates its values and provides string
// representations for transport and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready to be served.
	Ready

	// Served indicates the order has been delivered to the table.
	Served

	// Paid indicates the order has been paid for.
	// This is the terminal state; reaching it stamps the completion time.
	Paid
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Served:    "Served",
		Paid:      "Paid",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Served:    "Served",
		Paid:      "Paid",
	}
}

// StatusFromString parses a Status from its canonical string representation.
// Returns an error for unrecognized input.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Ready, Served, Paid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Before reports whether s precedes other in the fixed lifecycle order.
func (s Status) Before(other Status) bool {
	return s < other
}

// IsTerminal reports whether the status is the final lifecycle state.
func (s Status) IsTerminal() bool {
	return s == Paid
}
