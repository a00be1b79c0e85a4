package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The set of states is closed: values outside it are rejected on construction
// and on every change. Transitions between members are unrestricted, matching
// the permissive behavior of the fulfillment workflow (an order may move from
// any state to any other, including back to pending).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of every newly created order.
	StatusPending

	// StatusPicked indicates the order's items have been picked from stock.
	StatusPicked

	// StatusPacked indicates the order has been packed for handover.
	StatusPacked

	// StatusReady indicates the order is ready for pickup or dispatch.
	StatusReady

	// StatusCancelled indicates the order was cancelled.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusPicked:    "picked",
		StatusPacked:    "packed",
		StatusReady:     "ready",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusPicked:    "picked",
		StatusPacked:    "packed",
		StatusReady:     "ready",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a status from its lowercase string representation.
// Returns an error for any name outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value belongs to the closed set.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
// It implements the fmt.Stringer interface and is safe to call
// on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsCompleted reports whether the status counts as completed for KPI purposes.
// Completed statuses are picked, packed, and ready; pending and cancelled are not.
func (s Status) IsCompleted() bool {
	return s == StatusPicked || s == StatusPacked || s == StatusReady
}
