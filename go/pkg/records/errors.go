package records

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidUser is returned when a user lacks a name or an email.
	ErrInvalidUser = errors.New("invalid user data")
	// ErrNotSendable reports an order with no contactable customer. It is a
	// routine outcome, not a fault.
	ErrNotSendable = errors.New("no customer email address found")
)

// InvalidUserError lists the identity fields that were missing.
type InvalidUserError struct {
	Missing []string
}

func (e *InvalidUserError) Error() string {
	return ErrInvalidUser.Error() + ": missing " + strings.Join(e.Missing, ", ")
}

func (e *InvalidUserError) Unwrap() error { return ErrInvalidUser }
