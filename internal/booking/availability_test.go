package booking

import (
	"reflect"
	"testing"

	"github.com/rentalworks/partyrent/internal/domain"
)

func testItem(id int64, qty int) *domain.InventoryItem {
	return &domain.InventoryItem{ID: id, Slug: "test-item", Name: "Test Item", QtyAvailable: qty}
}

func TestCheckAvailabilityNoReservations(t *testing.T) {
	item := testItem(1, 5)
	result := CheckAvailability(item, nil, MustDate("2024-01-10"), MustDate("2024-01-15"), 3, 0, Buffers{})

	if !result.Available {
		t.Error("Expected available with no reservations")
	}
	if result.AvailableQty != 5 {
		t.Errorf("Expected available qty 5, got %d", result.AvailableQty)
	}
	if len(result.DisabledDates) != 0 {
		t.Errorf("Expected no disabled dates, got %v", result.DisabledDates)
	}
}

func TestCheckAvailabilityBufferedOverlap(t *testing.T) {
	// qtyAvailable=5, one confirmed reservation qty=3 over 01-10..01-12,
	// postDays=1 extends the blocked window to [01-10, 01-13).
	item := testItem(1, 5)
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 3, StartDate: "2024-01-10", EndDate: "2024-01-12", Status: domain.ReservationConfirmed},
	}
	result := CheckAvailability(item, reservations,
		MustDate("2024-01-09"), MustDate("2024-01-11"), 3, 0, Buffers{PreDays: 0, PostDays: 1})

	if result.Available {
		t.Error("Expected not available")
	}
	if result.AvailableQty != 2 {
		t.Errorf("Expected available qty 2, got %d", result.AvailableQty)
	}
	if !reflect.DeepEqual(result.DisabledDates, []string{"2024-01-10"}) {
		t.Errorf("Expected disabled dates [2024-01-10], got %v", result.DisabledDates)
	}
}

func TestCheckAvailabilityFullCoverageBlocksRange(t *testing.T) {
	item := testItem(1, 5)
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 3, StartDate: "2024-01-01", EndDate: "2024-02-01", Status: domain.ReservationConfirmed},
	}
	result := CheckAvailability(item, reservations,
		MustDate("2024-01-10"), MustDate("2024-01-13"), 3, 0, Buffers{})

	if result.Available {
		t.Error("Expected not available")
	}
	want := []string{"2024-01-10", "2024-01-11", "2024-01-12"}
	if !reflect.DeepEqual(result.DisabledDates, want) {
		t.Errorf("Expected every overlapping day disabled, got %v", result.DisabledDates)
	}
}

func TestCheckAvailabilityIgnoresCanceledAndOtherItems(t *testing.T) {
	item := testItem(1, 2)
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 2, StartDate: "2024-01-10", EndDate: "2024-01-12", Status: domain.ReservationCanceled},
		{ID: 101, ItemID: 2, Qty: 2, StartDate: "2024-01-10", EndDate: "2024-01-12", Status: domain.ReservationConfirmed},
	}
	result := CheckAvailability(item, reservations,
		MustDate("2024-01-10"), MustDate("2024-01-12"), 2, 0, Buffers{})

	if !result.Available {
		t.Errorf("Expected available, got disabled dates %v", result.DisabledDates)
	}
	if result.AvailableQty != 2 {
		t.Errorf("Expected available qty 2, got %d", result.AvailableQty)
	}
}

func TestCheckAvailabilityExcludesOwnReservation(t *testing.T) {
	item := testItem(1, 3)
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 3, StartDate: "2024-01-10", EndDate: "2024-01-12", Status: domain.ReservationConfirmed},
	}

	blocked := CheckAvailability(item, reservations,
		MustDate("2024-01-10"), MustDate("2024-01-12"), 1, 0, Buffers{})
	if blocked.Available {
		t.Error("Expected blocked without exclusion")
	}

	editing := CheckAvailability(item, reservations,
		MustDate("2024-01-10"), MustDate("2024-01-12"), 3, 100, Buffers{})
	if !editing.Available {
		t.Errorf("Expected available when excluding own reservation, got %v", editing.DisabledDates)
	}
}

func TestCheckAvailabilityBufferMonotonicity(t *testing.T) {
	// Increasing postDays can only add disabled dates after a reservation's
	// end, never remove previously disabled ones.
	item := testItem(1, 1)
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 1, StartDate: "2024-01-10", EndDate: "2024-01-12", Status: domain.ReservationConfirmed},
	}
	start, end := MustDate("2024-01-08"), MustDate("2024-01-16")

	prev := map[string]bool{}
	for postDays := 0; postDays <= 3; postDays++ {
		result := CheckAvailability(item, reservations, start, end, 1, 0, Buffers{PostDays: postDays})
		got := map[string]bool{}
		for _, d := range result.DisabledDates {
			got[d] = true
		}
		for d := range prev {
			if !got[d] {
				t.Errorf("postDays=%d dropped previously disabled date %s", postDays, d)
			}
		}
		prev = got
	}
	if len(prev) != 2+3 {
		t.Errorf("Expected 5 disabled dates at postDays=3, got %d", len(prev))
	}
}

func TestCheckAvailabilityIdempotent(t *testing.T) {
	item := testItem(1, 5)
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 3, StartDate: "2024-01-10", EndDate: "2024-01-12", Status: domain.ReservationConfirmed},
	}
	first := CheckAvailability(item, reservations, MustDate("2024-01-09"), MustDate("2024-01-14"), 3, 0, Buffers{PostDays: 1})
	second := CheckAvailability(item, reservations, MustDate("2024-01-09"), MustDate("2024-01-14"), 3, 0, Buffers{PostDays: 1})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical results, got %v then %v", first, second)
	}
}

func TestCheckAvailabilityDefaultsQtyToOne(t *testing.T) {
	item := testItem(1, 1)
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 1, StartDate: "2024-01-10", EndDate: "2024-01-11", Status: domain.ReservationConfirmed},
	}
	result := CheckAvailability(item, reservations, MustDate("2024-01-10"), MustDate("2024-01-11"), 0, 0, Buffers{})
	if result.Available {
		t.Error("Expected qty<=0 to be treated as 1 and blocked")
	}
}

func TestDisabledDatesForItemHorizon(t *testing.T) {
	item := testItem(1, 2)
	today := MustDate("2024-01-01")
	reservations := []domain.Reservation{
		{ID: 100, ItemID: 1, Qty: 2, StartDate: "2024-01-03", EndDate: "2024-01-05", Status: domain.ReservationConfirmed},
	}

	disabled := DisabledDatesForItem(item, reservations, 1, 10, today, Buffers{})
	want := []string{"2024-01-03", "2024-01-04"}
	if !reflect.DeepEqual(disabled, want) {
		t.Errorf("Expected %v, got %v", want, disabled)
	}

	// Partial consumption leaves room for a smaller request.
	disabled = DisabledDatesForItem(item, reservations, 3, 10, today, Buffers{})
	if len(disabled) != 11 {
		t.Errorf("Expected whole horizon disabled for over-request, got %d days", len(disabled))
	}
}

func TestDisabledDatesForItemInclusiveHorizon(t *testing.T) {
	item := testItem(1, 0)
	disabled := DisabledDatesForItem(item, nil, 1, 365, MustDate("2024-01-01"), Buffers{})
	if len(disabled) != 366 {
		t.Errorf("Expected 366 days for a 365-day horizon, got %d", len(disabled))
	}
}
