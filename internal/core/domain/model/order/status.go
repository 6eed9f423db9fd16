package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. The transition table below is the
// only place the legal edges are defined; every status-mutating operation on
// Order goes through TransitionTo.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a placed order. Weight-priced orders
	// wait here for the shop's per-kilo quote.
	Pending

	// Processing means the shop has accepted the order and is working on it.
	Processing

	// Completed is a final state: the laundry was returned to the customer.
	Completed

	// Cancelled is a final state reachable from Pending and Processing.
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:    "Unknown",
	Pending:    "Pending",
	Processing: "Processing",
	Completed:  "Completed",
	Cancelled:  "Cancelled",
}

var transitions = map[Status][]Status{
	Pending:    {Processing, Cancelled},
	Processing: {Completed, Cancelled},
}

// ParseStatus converts a status name to a Status. Matching is
// case-insensitive, so "processing" and "Processing" are equivalent.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether s -> next is an edge of the lifecycle.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if s -> next is legal and an
// errs.InvalidTransitionError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return s, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}
