package storeapi

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
)

func TestNewOrderNumber(t *testing.T) {
	number := newOrderNumber()
	if !strings.HasPrefix(number, "PRP-") {
		t.Fatalf("order number %q missing PRP- prefix", number)
	}
	if _, err := strconv.ParseInt(strings.TrimPrefix(number, "PRP-"), 10, 64); err != nil {
		t.Errorf("order number %q suffix is not numeric: %v", number, err)
	}
}

func TestCartFailStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{booking.ErrCartNotFound, http.StatusNotFound},
		{booking.ErrLineNotFound, http.StatusNotFound},
		{errors.Wrap(booking.ErrCartNotFound, "loading cart"), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := cartFailStatus(tc.err); got != tc.want {
			t.Errorf("cartFailStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestSiblingDemandBlocksJointOverbooking(t *testing.T) {
	item := &domain.InventoryItem{ID: 1, QtyAvailable: 5}
	lines := []booking.LineItem{
		{ID: "a", ItemID: 1, Qty: 3, Start: booking.MustDate("2024-01-10"), End: booking.MustDate("2024-01-14")},
		{ID: "b", ItemID: 1, Qty: 3, Start: booking.MustDate("2024-01-12"), End: booking.MustDate("2024-01-16")},
		{ID: "c", ItemID: 2, Qty: 9, Start: booking.MustDate("2024-01-10"), End: booking.MustDate("2024-01-16")},
	}

	// Each line fits alone against an empty reservation table.
	for i := range lines[:2] {
		line := lines[i]
		alone := booking.CheckAvailability(item, nil, line.Start, line.End, line.Qty, 0, booking.Buffers{})
		if !alone.Available {
			t.Fatalf("line %s should fit alone", line.ID)
		}
	}

	// With its sibling counted, the overlapping days push demand to 6 of 5.
	extra := siblingDemand(lines, 0)
	if len(extra) != 1 || extra[0].Qty != 3 {
		t.Fatalf("siblingDemand = %+v, want one qty-3 record for item 1", extra)
	}
	joint := booking.CheckAvailability(item, extra, lines[0].Start, lines[0].End, lines[0].Qty, 0, booking.Buffers{})
	if joint.Available {
		t.Error("overlapping sibling lines should not both fit")
	}
	want := []string{"2024-01-12", "2024-01-13"}
	if len(joint.DisabledDates) != len(want) {
		t.Fatalf("DisabledDates = %v, want %v", joint.DisabledDates, want)
	}
	for i, d := range want {
		if joint.DisabledDates[i] != d {
			t.Errorf("DisabledDates[%d] = %s, want %s", i, joint.DisabledDates[i], d)
		}
	}
}

func TestSiblingDemandIgnoresOtherItems(t *testing.T) {
	lines := []booking.LineItem{
		{ID: "a", ItemID: 1, Qty: 2, Start: booking.MustDate("2024-01-10"), End: booking.MustDate("2024-01-12")},
		{ID: "b", ItemID: 2, Qty: 4, Start: booking.MustDate("2024-01-10"), End: booking.MustDate("2024-01-12")},
	}
	if extra := siblingDemand(lines, 0); len(extra) != 0 {
		t.Errorf("siblingDemand crossed items: %+v", extra)
	}
}
