// Package models provides shared data models for all Go services.
package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownStatus is returned when a string is not a known order status.
	ErrUnknownStatus = errors.New("unknown order status")
	// ErrNegativeAmount is returned for an order whose amount is below zero.
	ErrNegativeAmount = errors.New("negative order amount")
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ParseOrderStatus converts s into an OrderStatus. Matching is exact.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusShipped, OrderStatusPending, OrderStatusDelivered:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// AccountStatus is the human-readable label of a user account status code.
type AccountStatus string

const (
	AccountStatusActive  AccountStatus = "Active"
	AccountStatusPending AccountStatus = "Pending"
)

// Customer is the contact attached to an order.
type Customer struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	IsVIP *bool  `json:"is_vip,omitempty" yaml:"is_vip,omitempty"`
}

// Order represents an order in the system.
type Order struct {
	ID       int64           `json:"id" yaml:"id"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Status   OrderStatus     `json:"status" yaml:"status"`
	Customer *Customer       `json:"customer,omitempty" yaml:"customer,omitempty"`
}

// Validate checks the invariants an order must hold once constructed.
func (o Order) Validate() error {
	if o.Amount.IsNegative() {
		return fmt.Errorf("order %d: %w: %s", o.ID, ErrNegativeAmount, o.Amount)
	}
	if _, err := ParseOrderStatus(string(o.Status)); err != nil {
		return fmt.Errorf("order %d: %w", o.ID, err)
	}
	return nil
}

// User represents a user in the system.
type User struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Age   *int   `json:"age,omitempty" yaml:"age,omitempty"`
}

// ProfileConfig controls how a profile is derived from a user.
type ProfileConfig struct {
	IsAdmin bool `json:"is_admin,omitempty" yaml:"is_admin,omitempty"`
}

// UserProfile is the display-ready summary of a user.
type UserProfile struct {
	ID      int64  `json:"id"`
	Display string `json:"display"`
	Contact string `json:"contact"`
	Age     *int   `json:"age,omitempty"`
}
