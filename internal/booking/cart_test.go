package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func cartLine(itemID int64, qty int, start, end string, price string) LineItem {
	p, _ := decimal.NewFromString(price)
	return LineItem{
		ItemID:    itemID,
		Name:      "item",
		Qty:       qty,
		Start:     MustDate(start),
		End:       MustDate(end),
		UnitPrice: p,
	}
}

func TestCartAddAssignsLineID(t *testing.T) {
	store := NewCartStore()
	cartID := store.Create()

	line, err := store.Add(cartID, cartLine(1, 2, "2024-01-01", "2024-01-03", "10.00"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if line.ID == "" {
		t.Error("Expected generated line id")
	}
}

func TestCartAddMergesSameItemAndRange(t *testing.T) {
	store := NewCartStore()
	cartID := store.Create()

	first, _ := store.Add(cartID, cartLine(1, 2, "2024-01-01", "2024-01-03", "10.00"))
	merged, err := store.Add(cartID, cartLine(1, 3, "2024-01-01", "2024-01-03", "10.00"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if merged.ID != first.ID {
		t.Error("Expected merge into the existing line")
	}
	if merged.Qty != 5 {
		t.Errorf("Expected merged qty 5, got %d", merged.Qty)
	}

	lines, _ := store.Lines(cartID)
	if len(lines) != 1 {
		t.Errorf("Expected 1 line after merge, got %d", len(lines))
	}
}

func TestCartAddDifferentRangeStaysSeparate(t *testing.T) {
	store := NewCartStore()
	cartID := store.Create()

	store.Add(cartID, cartLine(1, 1, "2024-01-01", "2024-01-03", "10.00"))
	store.Add(cartID, cartLine(1, 1, "2024-02-01", "2024-02-03", "10.00"))

	lines, _ := store.Lines(cartID)
	if len(lines) != 2 {
		t.Errorf("Expected 2 separate lines, got %d", len(lines))
	}
}

func TestCartUpdatePatchesFields(t *testing.T) {
	store := NewCartStore()
	cartID := store.Create()
	line, _ := store.Add(cartID, cartLine(1, 2, "2024-01-01", "2024-01-03", "10.00"))

	updated, err := store.Update(cartID, line.ID, LinePatch{Qty: 4})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updated.Qty != 4 {
		t.Errorf("Expected qty 4, got %d", updated.Qty)
	}
	if !updated.Start.Equal(MustDate("2024-01-01")) {
		t.Error("Expected untouched start date to survive the patch")
	}

	updated, _ = store.Update(cartID, line.ID, LinePatch{Start: MustDate("2024-03-01"), End: MustDate("2024-03-05")})
	if !updated.Start.Equal(MustDate("2024-03-01")) || !updated.End.Equal(MustDate("2024-03-05")) {
		t.Errorf("Expected patched dates, got %s..%s", updated.Start, updated.End)
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	store := NewCartStore()
	cartID := store.Create()
	line, _ := store.Add(cartID, cartLine(1, 2, "2024-01-01", "2024-01-03", "10.00"))
	store.Add(cartID, cartLine(2, 1, "2024-01-01", "2024-01-03", "99.00"))

	if err := store.Remove(cartID, line.ID); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	lines, _ := store.Lines(cartID)
	if len(lines) != 1 {
		t.Errorf("Expected 1 line after remove, got %d", len(lines))
	}

	if err := store.Clear(cartID); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	lines, _ = store.Lines(cartID)
	if len(lines) != 0 {
		t.Errorf("Expected empty cart after clear, got %d lines", len(lines))
	}
}

func TestCartUnknownIDs(t *testing.T) {
	store := NewCartStore()

	if _, err := store.Add("missing", cartLine(1, 1, "2024-01-01", "2024-01-02", "1.00")); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("Expected ErrCartNotFound, got %v", err)
	}

	cartID := store.Create()
	if _, err := store.Update(cartID, "missing", LinePatch{Qty: 1}); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("Expected ErrLineNotFound, got %v", err)
	}
	if err := store.Remove(cartID, "missing"); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("Expected ErrLineNotFound, got %v", err)
	}
}

func TestCartTotalsThroughStore(t *testing.T) {
	store := NewCartStore()
	cartID := store.Create()
	store.Add(cartID, cartLine(1, 2, "2024-01-01", "2024-01-03", "10.00"))

	taxRate, _ := decimal.NewFromString("0.08")
	totals, err := store.Totals(cartID, taxRate, DefaultDepositFraction)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if totals.Total.StringFixed(2) != "43.20" {
		t.Errorf("Expected total 43.20, got %s", totals.Total.StringFixed(2))
	}
}

func TestCartPruneStale(t *testing.T) {
	store := NewCartStore()
	stale := store.Create()
	fresh := store.Create()
	store.Add(fresh, cartLine(1, 1, "2024-01-01", "2024-01-03", "10.00"))

	store.mu.Lock()
	store.carts[stale].touched = time.Now().Add(-72 * time.Hour)
	store.mu.Unlock()

	if pruned := store.PruneStale(48 * time.Hour); pruned != 1 {
		t.Fatalf("Expected 1 pruned cart, got %d", pruned)
	}
	if _, err := store.Lines(stale); !errors.Is(err, ErrCartNotFound) {
		t.Errorf("Expected stale cart gone, got %v", err)
	}
	if lines, err := store.Lines(fresh); err != nil || len(lines) != 1 {
		t.Errorf("Expected fresh cart kept, got %v / %d lines", err, len(lines))
	}
}

func TestCartAccessRefreshesTouched(t *testing.T) {
	store := NewCartStore()
	cartID := store.Create()

	store.mu.Lock()
	store.carts[cartID].touched = time.Now().Add(-72 * time.Hour)
	store.mu.Unlock()

	store.Add(cartID, cartLine(1, 1, "2024-01-01", "2024-01-03", "10.00"))
	if pruned := store.PruneStale(48 * time.Hour); pruned != 0 {
		t.Errorf("Expected recently used cart kept, pruned %d", pruned)
	}
}
