package booking

import (
	"testing"

	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestRentalDaysMinimumOne(t *testing.T) {
	d := MustDate("2024-01-10")
	if got := RentalDays(d, d); got != 1 {
		t.Errorf("Expected same-day range to bill 1 day, got %d", got)
	}
	// Inverted range is clamped, not rejected.
	if got := RentalDays(MustDate("2024-01-12"), MustDate("2024-01-10")); got != 1 {
		t.Errorf("Expected inverted range to bill 1 day, got %d", got)
	}
	if got := RentalDays(MustDate("2024-01-01"), MustDate("2024-01-03")); got != 2 {
		t.Errorf("Expected 2 days, got %d", got)
	}
}

func TestLineTotal(t *testing.T) {
	li := LineItem{
		Qty:       2,
		Start:     MustDate("2024-01-01"),
		End:       MustDate("2024-01-03"),
		UnitPrice: mustDecimal(t, "10.00"),
	}
	if got := LineTotal(li); !got.Equal(mustDecimal(t, "40.00")) {
		t.Errorf("Expected 40.00, got %s", got)
	}
}

func TestCartTotalsConcreteScenario(t *testing.T) {
	lines := []LineItem{
		{
			Qty:       2,
			Start:     MustDate("2024-01-01"),
			End:       MustDate("2024-01-03"),
			UnitPrice: mustDecimal(t, "10.00"),
		},
	}
	totals := CartTotals(lines, mustDecimal(t, "0.08"), DefaultDepositFraction)

	if !totals.Subtotal.Equal(mustDecimal(t, "40.00")) {
		t.Errorf("Expected subtotal 40.00, got %s", totals.Subtotal)
	}
	if !totals.Tax.Equal(mustDecimal(t, "3.20")) {
		t.Errorf("Expected tax 3.20, got %s", totals.Tax)
	}
	if !totals.Total.Equal(mustDecimal(t, "43.20")) {
		t.Errorf("Expected total 43.20, got %s", totals.Total)
	}
	if !totals.DepositEstimate.Equal(mustDecimal(t, "10.00")) {
		t.Errorf("Expected deposit estimate 10.00, got %s", totals.DepositEstimate)
	}
}

func TestCartTotalsEmptyCart(t *testing.T) {
	totals := CartTotals(nil, mustDecimal(t, "0.08"), DefaultDepositFraction)
	zero := decimal.Zero
	if !totals.Subtotal.Equal(zero) || !totals.Tax.Equal(zero) ||
		!totals.Total.Equal(zero) || !totals.DepositEstimate.Equal(zero) {
		t.Errorf("Expected all zero totals, got %+v", totals)
	}
}

func TestCartTotalsRoundsOnlyAtBoundary(t *testing.T) {
	// Three lines of 0.333/day for one day each: per-line rounding would give
	// 0.99, the engine must sum first and round once.
	line := LineItem{
		Qty:       1,
		Start:     MustDate("2024-01-01"),
		End:       MustDate("2024-01-02"),
		UnitPrice: mustDecimal(t, "0.333"),
	}
	lines := []LineItem{line, line, line}
	totals := CartTotals(lines, decimal.Zero, decimal.Zero)
	if !totals.Subtotal.Equal(mustDecimal(t, "1.00")) {
		t.Errorf("Expected subtotal 1.00 (0.999 rounded half-up), got %s", totals.Subtotal)
	}
}

func TestCartTotalsRoundHalfUp(t *testing.T) {
	lines := []LineItem{
		{
			Qty:       1,
			Start:     MustDate("2024-01-01"),
			End:       MustDate("2024-01-02"),
			UnitPrice: mustDecimal(t, "10.125"),
		},
	}
	totals := CartTotals(lines, decimal.Zero, decimal.Zero)
	if !totals.Subtotal.Equal(mustDecimal(t, "10.13")) {
		t.Errorf("Expected 10.125 to round up to 10.13, got %s", totals.Subtotal)
	}
}

func TestResolveDeposit(t *testing.T) {
	lineTotal := mustDecimal(t, "200.00")

	flat := &DepositPolicy{Kind: domain.DepositFlat, Value: mustDecimal(t, "50.00")}
	if got := ResolveDeposit(flat, lineTotal); !got.Equal(mustDecimal(t, "50.00")) {
		t.Errorf("Expected flat deposit 50.00, got %s", got)
	}

	percent := &DepositPolicy{Kind: domain.DepositPercent, Value: mustDecimal(t, "25")}
	if got := ResolveDeposit(percent, lineTotal); !got.Equal(mustDecimal(t, "50.00")) {
		t.Errorf("Expected percent deposit 50.00, got %s", got)
	}

	if got := ResolveDeposit(nil, lineTotal); !got.Equal(decimal.Zero) {
		t.Errorf("Expected zero deposit without policy, got %s", got)
	}
}

func TestPolicyForItem(t *testing.T) {
	item := &domain.InventoryItem{DepositType: domain.DepositPercent, DepositValue: mustDecimal(t, "30")}
	policy := PolicyForItem(item)
	if policy == nil || policy.Kind != domain.DepositPercent {
		t.Fatalf("Expected percent policy, got %+v", policy)
	}

	if PolicyForItem(&domain.InventoryItem{}) != nil {
		t.Error("Expected nil policy for item without deposit schema")
	}
}
