package records

import (
	"testing"

	"github.com/example/orderdesk/go/pkg/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleOrders() []models.Order {
	vip := true
	return []models.Order{
		{ID: 101, Amount: dec("150.00"), Status: models.OrderStatusShipped,
			Customer: &models.Customer{Name: "Alice", Email: "alice@example.com"}},
		{ID: 102, Amount: dec("45.50"), Status: models.OrderStatusPending},
		{ID: 103, Amount: dec("200.00"), Status: models.OrderStatusDelivered,
			Customer: &models.Customer{Name: "Bob", Email: "bob@test.com", IsVIP: &vip}},
	}
}

func TestSumAmounts(t *testing.T) {
	assert.True(t, SumAmounts(nil).IsZero())
	assert.True(t, SumAmounts([]models.Order{}).IsZero())

	got := SumAmounts(sampleOrders())
	assert.True(t, got.Equal(dec("395.50")), "got %s", got)
	assert.False(t, got.IsNegative())
}

func TestSumPrices(t *testing.T) {
	assert.True(t, SumPrices(nil).IsZero())

	got := SumPrices([]decimal.Decimal{dec("10.50"), dec("20.00"), dec("5.25")})
	assert.True(t, got.Equal(dec("35.75")), "got %s", got)
}

func TestSumPricesNoFloatDrift(t *testing.T) {
	prices := make([]decimal.Decimal, 10)
	for i := range prices {
		prices[i] = dec("0.1")
	}
	assert.True(t, SumPrices(prices).Equal(decimal.NewFromInt(1)))
}

func TestFilterByStatus(t *testing.T) {
	orders := sampleOrders()

	pending := FilterByStatus(orders, models.OrderStatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(102), pending[0].ID)

	again := FilterByStatus(pending, models.OrderStatusPending)
	if diff := cmp.Diff(pending, again, decimalEqual); diff != "" {
		t.Errorf("filter not idempotent (-first +second):\n%s", diff)
	}

	none := FilterByStatus(orders, "Pending")
	assert.NotNil(t, none)
	assert.Empty(t, none)

	assert.Empty(t, FilterByStatus(nil, models.OrderStatusShipped))
}

func TestFilterByStatusKeepsOrderAndInput(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Amount: dec("1"), Status: models.OrderStatusShipped},
		{ID: 2, Amount: dec("2"), Status: models.OrderStatusPending},
		{ID: 3, Amount: dec("3"), Status: models.OrderStatusShipped},
		{ID: 4, Amount: dec("4"), Status: models.OrderStatusShipped},
	}
	before := append([]models.Order(nil), orders...)

	got := FilterByStatus(orders, models.OrderStatusShipped)

	ids := make([]int64, 0, len(got))
	for _, o := range got {
		assert.Equal(t, models.OrderStatusShipped, o.Status)
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
	if diff := cmp.Diff(before, orders, decimalEqual); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestResolveEmailTarget(t *testing.T) {
	tests := []struct {
		name    string
		order   models.Order
		want    string
		wantErr error
	}{
		{
			name:  "customer with email",
			order: sampleOrders()[0],
			want:  "alice@example.com",
		},
		{
			name:    "no customer",
			order:   sampleOrders()[1],
			wantErr: ErrNotSendable,
		},
		{
			name:    "customer without email",
			order:   models.Order{ID: 9, Customer: &models.Customer{Name: "Eve"}},
			wantErr: ErrNotSendable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEmailTarget(tt.order)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyStatusCode(t *testing.T) {
	got, ok := ClassifyStatusCode(1)
	assert.True(t, ok)
	assert.Equal(t, models.AccountStatusActive, got)

	got, ok = ClassifyStatusCode(2)
	assert.True(t, ok)
	assert.Equal(t, models.AccountStatusPending, got)

	for _, code := range []int{0, -5, 3, 100} {
		got, ok := ClassifyStatusCode(code)
		assert.False(t, ok, "code %d", code)
		assert.Empty(t, got, "code %d", code)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleOrders())

	assert.True(t, s.Total.Equal(dec("395.5")))
	assert.Equal(t, 3, s.Orders)
	assert.Equal(t, map[models.OrderStatus]int{
		models.OrderStatusShipped:   1,
		models.OrderStatusPending:   1,
		models.OrderStatusDelivered: 1,
	}, s.ByStatus)
	assert.Equal(t, "Total Revenue: $395.50", RevenueLine(s.Total))
}

func TestSpentLine(t *testing.T) {
	assert.Equal(t, "Total Spent: $35.75", SpentLine(dec("35.75")))
	assert.Equal(t, "Total Spent: $0.00", SpentLine(SumPrices(nil)))
}
