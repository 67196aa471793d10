package order

import (
	"fmt"

	"travelorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a travel order.
// It implements a small state machine: any state may transition to any other,
// with a single forbidden edge: an approved order can never be cancelled.
//
// State transitions:
//
//	pending <──> approved <──> in_progress
//	   │  ╲          x             │
//	   │   ╲    (no cancel         │
//	   ▼    ╲    once approved)    ▼
//	cancelled <────────────── cancelled
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first submitted.
	// Orders are editable only while in this status.
	Pending

	// Approved indicates the trip has been approved by a reviewer.
	// Approved orders can never transition to Cancelled.
	Approved

	// Cancelled indicates the trip was cancelled.
	Cancelled

	// InProgress indicates the trip is currently underway.
	InProgress
)

// getStatusStrings returns a map of Status values to their canonical wire codes.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Approved:   "approved",
		Cancelled:  "cancelled",
		InProgress: "in_progress",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Approved:   "approved",
		Cancelled:  "cancelled",
		InProgress: "in_progress",
	}
}

// getStatusAliases returns the legacy localized vocabulary accepted for the
// initial status at creation time only. Transitions never accept aliases.
func getStatusAliases() map[string]Status {
	return map[string]Status{
		"solicitado":   Pending,
		"aprovado":     Approved,
		"cancelado":    Cancelled,
		"em_andamento": InProgress,
	}
}

// getStatusLabels returns human-readable labels used when rendering
// notification messages.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		Pending:    "Pending",
		Approved:   "Approved",
		Cancelled:  "Cancelled",
		InProgress: "In Progress",
	}
}

// StatusFromString parses a canonical status code ("pending", "approved",
// "cancelled", "in_progress"). Aliases are rejected; this is the vocabulary
// accepted for status transitions.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// StatusFromAlias parses an initial status supplied at creation time.
// It accepts both the canonical vocabulary and the legacy localized aliases
// ("solicitado", "aprovado", "cancelado", "em_andamento"), normalizing
// everything to the canonical Status. Transitions must use StatusFromString.
func StatusFromAlias(s string) (Status, error) {
	if status, ok := getStatusAliases()[s]; ok {
		return status, nil
	}
	return StatusFromString(s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Approved, Cancelled, InProgress.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the canonical wire code of the status.
//
// Returns "pending", "approved", "cancelled" or "in_progress" for valid
// statuses and "unknown" otherwise. Implements the fmt.Stringer interface
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the human-readable label of the status, used when
// interpolating notification messages ("In Progress" rather than
// "in_progress"). Falls back to the wire code for unknown values.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return s.String()
}

// CanTransitionTo checks whether the status may transition to newStatus
// without performing the transition.
//
// Every transition between valid statuses is permitted except
// Approved -> Cancelled, which returns a ConflictError for all actors.
func (s Status) CanTransitionTo(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if s == Approved && newStatus == Cancelled {
		return errs.NewConflictError("cannot cancel an already-approved order")
	}

	return nil
}

// TransitionTo validates and performs a transition, returning the new status.
//
// Returns:
//   - (newStatus, nil) on a permitted transition
//   - (0, error) when newStatus is invalid or the transition is forbidden
func (s Status) TransitionTo(newStatus Status) (Status, error) {
	if err := s.CanTransitionTo(newStatus); err != nil {
		return 0, err
	}

	return newStatus, nil
}
