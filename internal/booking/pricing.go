package booking

import (
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultDepositFraction is the storewide refundable-hold heuristic applied
// when no override is configured: 25% of each line total.
var DefaultDepositFraction = decimal.NewFromFloat(0.25)

// RentalDays bills whole days between start and end with a hard minimum of
// one, so a same-day pickup/return still bills a single day. Inverted ranges
// are clamped rather than rejected.
func RentalDays(start, end Date) int {
	days := DaysBetween(start, end)
	if days < 1 {
		return 1
	}
	return days
}

// LineItem is one cart entry. UnitPrice is snapshotted when the line is
// created so later catalog price edits never retroactively alter a cart or a
// placed order.
type LineItem struct {
	ID        string          `json:"id"`
	ItemID    int64           `json:"item_id,string"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	Start     Date            `json:"start_date"`
	End       Date            `json:"end_date"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal is unitPrice * qty * rentalDays, with no rounding applied so
// intermediate precision is preserved until the cart boundary.
func LineTotal(li LineItem) decimal.Decimal {
	days := decimal.NewFromInt(int64(RentalDays(li.Start, li.End)))
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Qty))).Mul(days)
}

// Totals is derived, never stored directly; it is recomputed whenever the
// line-item set changes.
type Totals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	DepositEstimate decimal.Decimal `json:"deposit_estimate"`
	Total           decimal.Decimal `json:"total"`
}

// CartTotals sums the line totals and derives tax, deposit estimate and grand
// total. The four outputs are rounded half-up to cents independently and only
// here, never on per-line sums, so rounding error cannot compound across many
// lines. An empty cart yields exact zeros.
func CartTotals(lines []LineItem, taxRate, depositFraction decimal.Decimal) Totals {
	subtotal := decimal.Zero
	deposit := decimal.Zero
	for _, li := range lines {
		lineTotal := LineTotal(li)
		subtotal = subtotal.Add(lineTotal)
		deposit = deposit.Add(lineTotal.Mul(depositFraction))
	}
	tax := subtotal.Mul(taxRate)
	total := subtotal.Add(tax)

	return Totals{
		Subtotal:        subtotal.Round(2),
		Tax:             tax.Round(2),
		DepositEstimate: deposit.Round(2),
		Total:           total.Round(2),
	}
}

// DepositPolicy is the per-item deposit schema: a flat absolute amount or a
// percentage of the line total.
type DepositPolicy struct {
	Kind  string          `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// PolicyForItem reads the tagged policy off an inventory item, nil when the
// item carries none.
func PolicyForItem(item *domain.InventoryItem) *DepositPolicy {
	switch item.DepositType {
	case domain.DepositFlat, domain.DepositPercent:
		return &DepositPolicy{Kind: item.DepositType, Value: item.DepositValue}
	default:
		return nil
	}
}

// ResolveDeposit evaluates a deposit policy against a line total. Adding a
// new policy kind only touches this switch.
func ResolveDeposit(policy *DepositPolicy, lineTotal decimal.Decimal) decimal.Decimal {
	if policy == nil {
		return decimal.Zero
	}
	switch policy.Kind {
	case domain.DepositFlat:
		return policy.Value
	case domain.DepositPercent:
		return lineTotal.Mul(policy.Value).Div(decimal.NewFromInt(100))
	default:
		return decimal.Zero
	}
}
