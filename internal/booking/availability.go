package booking

import (
	"github.com/rentalworks/partyrent/internal/domain"
)

// Buffers extends every reservation's blocked window by PreDays before its
// start and PostDays after its end, modeling cleaning/prep/transit turnaround.
type Buffers struct {
	PreDays  int `json:"pre_days"`
	PostDays int `json:"post_days"`
}

// AvailabilityResult is the verdict for one requested range.
// AvailableQty is the minimum remaining stock observed across the span: the
// binding constraint, since the caller cannot book more than the worst single
// day allows.
type AvailabilityResult struct {
	Available     bool     `json:"available"`
	AvailableQty  int      `json:"available_qty"`
	DisabledDates []string `json:"disabled_dates"`
}

// bufferedWindow is a reservation's blocked range [start, end) after buffer
// expansion, with unparsable records dropped.
type bufferedWindow struct {
	start Date
	end   Date
	qty   int
}

func bufferedWindows(reservations []domain.Reservation, itemID, excludeID int64, buf Buffers) []bufferedWindow {
	windows := make([]bufferedWindow, 0, len(reservations))
	for _, res := range reservations {
		if res.ItemID != itemID || res.Status != domain.ReservationConfirmed {
			continue
		}
		if excludeID != 0 && res.ID == excludeID {
			continue
		}
		start, err := ParseDate(res.StartDate)
		if err != nil {
			continue
		}
		end, err := ParseDate(res.EndDate)
		if err != nil {
			continue
		}
		windows = append(windows, bufferedWindow{
			start: start.AddDays(-buf.PreDays),
			end:   end.AddDays(buf.PostDays),
			qty:   res.Qty,
		})
	}
	return windows
}

func (w bufferedWindow) contains(d Date) bool {
	return !d.Before(w.start) && d.Before(w.end)
}

// CheckAvailability walks every calendar day in [start, end) and sums the
// quantity of all confirmed reservations of item whose buffered window covers
// that day. Days with less remaining stock than requestedQty are reported in
// DisabledDates. excludeReservationID lets a reservation being edited ignore
// its own prior allocation; pass 0 otherwise.
//
// The function is pure: it only reads its arguments and is safe to call
// concurrently.
func CheckAvailability(item *domain.InventoryItem, reservations []domain.Reservation,
	start, end Date, requestedQty int, excludeReservationID int64, buf Buffers) AvailabilityResult {

	if requestedQty < 1 {
		requestedQty = 1
	}

	windows := bufferedWindows(reservations, item.ID, excludeReservationID, buf)

	disabled := make([]string, 0)
	minAvailable := item.QtyAvailable

	for day := start; day.Before(end); day = day.AddDays(1) {
		qtyUsed := 0
		for _, w := range windows {
			if w.contains(day) {
				qtyUsed += w.qty
			}
		}
		availableQty := item.QtyAvailable - qtyUsed
		if availableQty < requestedQty {
			disabled = append(disabled, day.String())
		}
		if availableQty < minAvailable {
			minAvailable = availableQty
		}
	}

	return AvailabilityResult{
		Available:     len(disabled) == 0,
		AvailableQty:  minAvailable,
		DisabledDates: disabled,
	}
}

// DisabledDatesForItem runs the same per-day computation independently for
// every day from today through today+horizonDays inclusive, yielding the flat
// blocked-date list used to pre-populate calendar widgets. It takes no caller
// range and no exclusion id.
func DisabledDatesForItem(item *domain.InventoryItem, reservations []domain.Reservation,
	requestedQty, horizonDays int, today Date, buf Buffers) []string {

	if requestedQty < 1 {
		requestedQty = 1
	}
	if horizonDays < 0 {
		horizonDays = 0
	}

	windows := bufferedWindows(reservations, item.ID, 0, buf)

	disabled := make([]string, 0)
	for i := 0; i <= horizonDays; i++ {
		day := today.AddDays(i)
		qtyUsed := 0
		for _, w := range windows {
			if w.contains(day) {
				qtyUsed += w.qty
			}
		}
		if item.QtyAvailable-qtyUsed < requestedQty {
			disabled = append(disabled, day.String())
		}
	}
	return disabled
}
