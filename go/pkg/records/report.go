package records

import (
	"github.com/example/orderdesk/go/pkg/models"
	"github.com/shopspring/decimal"
)

// RevenueSummary is the revenue of a set of orders broken down by status.
type RevenueSummary struct {
	Total    decimal.Decimal            `json:"total"`
	Orders   int                        `json:"orders"`
	ByStatus map[models.OrderStatus]int `json:"by_status"`
}

// Summarize computes the revenue summary of orders.
func Summarize(orders []models.Order) RevenueSummary {
	byStatus := make(map[models.OrderStatus]int)
	for _, o := range orders {
		byStatus[o.Status]++
	}
	return RevenueSummary{
		Total:    SumAmounts(orders),
		Orders:   len(orders),
		ByStatus: byStatus,
	}
}

// FormatMoney renders an amount with a dollar sign and two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// RevenueLine is the console line for a revenue total.
func RevenueLine(total decimal.Decimal) string {
	return "Total Revenue: " + FormatMoney(total)
}

// SpentLine is the console line for a spending total.
func SpentLine(total decimal.Decimal) string {
	return "Total Spent: " + FormatMoney(total)
}
