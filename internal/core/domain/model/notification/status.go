package notification

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the answer state of a notification.
type Status int

const (
	Unknown Status = iota
	Pending
	Accepted
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:   "unknown",
	Pending:   "pending",
	Accepted:  "accepted",
	Cancelled: "cancelled",
}

// ParseStatus converts a stored status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && strings.EqualFold(name, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid notification status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Validate checks that s is pending, accepted or cancelled.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid notification status", s))
	}
	return nil
}
