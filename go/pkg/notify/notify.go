// Package notify decides which orders would get a notification email and to
// whom. Nothing is delivered; the plan is returned to the caller.
package notify

import (
	"fmt"

	"github.com/example/orderdesk/go/pkg/models"
	"github.com/example/orderdesk/go/pkg/records"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Eligibility reports whether an order's status qualifies for a notification.
type Eligibility func(models.Order) bool

// SkipPending makes every order eligible except pending ones.
func SkipPending(o models.Order) bool {
	return o.Status != models.OrderStatusPending
}

// AllOrders makes every order eligible.
func AllOrders(models.Order) bool { return true }

// SkipReason explains why an order got no message.
type SkipReason string

const (
	ReasonIneligible  SkipReason = "ineligible"
	ReasonNotSendable SkipReason = "not_sendable"
)

// Message is a notification that would be sent.
type Message struct {
	ID      uuid.UUID `json:"id"`
	OrderID int64     `json:"order_id"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
}

// Skipped is an order that got no message.
type Skipped struct {
	OrderID int64      `json:"order_id"`
	Reason  SkipReason `json:"reason"`
}

// Plan is the outcome of planning notifications for a set of orders.
type Plan struct {
	Messages []Message `json:"messages"`
	Skipped  []Skipped `json:"skipped"`
}

// Planner builds notification plans.
type Planner struct {
	eligible Eligibility
	logger   *zap.Logger
	newID    func() uuid.UUID
}

// Option configures a Planner.
type Option func(*Planner)

// WithEligibility replaces the default SkipPending policy.
func WithEligibility(e Eligibility) Option {
	return func(p *Planner) { p.eligible = e }
}

// WithIDs sets the message id generator.
func WithIDs(newID func() uuid.UUID) Option {
	return func(p *Planner) { p.newID = newID }
}

// NewPlanner returns a planner that logs to logger. A nil logger discards logs.
func NewPlanner(logger *zap.Logger, opts ...Option) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Planner{
		eligible: SkipPending,
		logger:   logger,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan walks orders in order and records a message or a skip for each one.
func (p *Planner) Plan(orders []models.Order) Plan {
	plan := Plan{
		Messages: make([]Message, 0, len(orders)),
		Skipped:  []Skipped{},
	}
	for _, o := range orders {
		if !p.eligible(o) {
			p.logger.Debug("order not eligible for notification",
				zap.Int64("order_id", o.ID), zap.String("status", string(o.Status)))
			plan.Skipped = append(plan.Skipped, Skipped{OrderID: o.ID, Reason: ReasonIneligible})
			continue
		}

		to, err := records.ResolveEmailTarget(o)
		if err != nil {
			p.logger.Info("could not send email",
				zap.Int64("order_id", o.ID), zap.Error(err))
			plan.Skipped = append(plan.Skipped, Skipped{OrderID: o.ID, Reason: ReasonNotSendable})
			continue
		}

		msg := Message{
			ID:      p.newID(),
			OrderID: o.ID,
			To:      to,
			Subject: fmt.Sprintf("Order #%d", o.ID),
		}
		p.logger.Info("sending email",
			zap.Int64("order_id", o.ID), zap.String("to", to), zap.Stringer("message_id", msg.ID))
		plan.Messages = append(plan.Messages, msg)
	}
	return plan
}

// String renders the console line of a planned message.
func (m Message) String() string {
	return "Sending email to " + m.To + " for Order #" + fmt.Sprint(m.OrderID)
}
