package adminapi

import (
	"testing"
)

func TestParseAdminDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-01-10", "2024-01-10", true},
		{" 2024-01-10 ", "2024-01-10", true},
		{"Jan 10, 2024", "2024-01-10", true},
		{"2024/01/10", "2024-01-10", true},
		{"not a date", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := parseAdminDate(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("parseAdminDate(%q) error = %v, want ok=%v", tc.in, err, tc.ok)
			continue
		}
		if tc.ok && got.String() != tc.want {
			t.Errorf("parseAdminDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestReservationPayloadDates(t *testing.T) {
	p := reservationPayload{StartDate: "2024-01-10", EndDate: "2024-01-12"}
	start, end, msg := p.dates()
	if msg != "" {
		t.Fatalf("dates() msg = %q, want valid", msg)
	}
	if start.String() != "2024-01-10" || end.String() != "2024-01-12" {
		t.Errorf("dates() = %s..%s", start, end)
	}

	p = reservationPayload{StartDate: "2024-01-12", EndDate: "2024-01-10"}
	if _, _, msg := p.dates(); msg == "" {
		t.Error("dates() accepted inverted range")
	}

	p = reservationPayload{StartDate: "2024-01-10", EndDate: "2024-01-10"}
	if _, _, msg := p.dates(); msg == "" {
		t.Error("dates() accepted zero-length range")
	}

	p = reservationPayload{StartDate: "garbage", EndDate: "2024-01-10"}
	if _, _, msg := p.dates(); msg == "" {
		t.Error("dates() accepted unparsable start")
	}
}
