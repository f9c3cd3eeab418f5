package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire format for calendar dates across the whole system.
const DateLayout = "2006-01-02"

// Date is a plain calendar date with no time zone and no time of day.
// Rental ranges are half-open: [Start, End). Keeping this distinct from
// time.Time avoids midnight boundaries silently shifting under a location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a normalized date; out-of-range values roll over the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a strict yyyy-MM-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid calendar date %q", s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// MustDate parses s and panics on malformed input, for tests and seed data.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current calendar date in the process-local zone.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date {
	t := d.utc().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) Before(other Date) bool {
	return d.utc().Before(other.utc())
}

func (d Date) After(other Date) bool {
	return d.utc().After(other.utc())
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalJSON renders the date as a yyyy-MM-dd string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a strict yyyy-MM-dd string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysBetween returns the whole-day distance from a to b, negative when b
// precedes a.
func DaysBetween(a, b Date) int {
	return int(b.utc().Sub(a.utc()) / (24 * time.Hour))
}
