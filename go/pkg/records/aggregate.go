package records

import (
	"github.com/example/orderdesk/go/pkg/models"
	"github.com/shopspring/decimal"
)

// SumAmounts returns the total amount of orders. An empty slice sums to zero.
func SumAmounts(orders []models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Amount)
	}
	return total
}

// SumPrices returns the total of a bare list of prices.
func SumPrices(prices []decimal.Decimal) decimal.Decimal {
	if len(prices) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, prices...)
}

// FilterByStatus returns the orders whose status equals status, in their
// original order. The input slice is not modified.
func FilterByStatus(orders []models.Order, status models.OrderStatus) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// ResolveEmailTarget returns the address a notification for order would go
// to, or ErrNotSendable when the order has no customer email.
func ResolveEmailTarget(order models.Order) (string, error) {
	if order.Customer == nil || order.Customer.Email == "" {
		return "", ErrNotSendable
	}
	return order.Customer.Email, nil
}

// ClassifyStatusCode maps an account status code to its label. The second
// result is false for every code other than 1 and 2.
func ClassifyStatusCode(code int) (models.AccountStatus, bool) {
	switch code {
	case 1:
		return models.AccountStatusActive, true
	case 2:
		return models.AccountStatusPending, true
	default:
		return "", false
	}
}
