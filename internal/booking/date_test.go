package booking

import "testing"

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-01-09")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if d.String() != "2024-01-09" {
		t.Errorf("Expected 2024-01-09, got %s", d.String())
	}
}

func TestParseDateRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "2024-1-9", "09/01/2024", "2024-13-01", "2024-02-30"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("Expected error for %q", s)
		}
	}
}

func TestAddDaysAcrossBoundaries(t *testing.T) {
	cases := []struct {
		start string
		n     int
		want  string
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-01-10", 0, "2024-01-10"},
	}
	for _, c := range cases {
		got := MustDate(c.start).AddDays(c.n)
		if got.String() != c.want {
			t.Errorf("%s + %d days: expected %s, got %s", c.start, c.n, c.want, got)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a := MustDate("2024-01-01")
	b := MustDate("2024-01-03")
	if got := DaysBetween(a, b); got != 2 {
		t.Errorf("Expected 2 days, got %d", got)
	}
	if got := DaysBetween(b, a); got != -2 {
		t.Errorf("Expected -2 days, got %d", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("Expected 0 days, got %d", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustDate("2024-01-09")
	b := MustDate("2024-01-10")
	if !a.Before(b) || b.Before(a) {
		t.Error("Expected 01-09 before 01-10")
	}
	if !b.After(a) {
		t.Error("Expected 01-10 after 01-09")
	}
	if !a.Equal(MustDate("2024-01-09")) {
		t.Error("Expected equal dates to compare equal")
	}
}
