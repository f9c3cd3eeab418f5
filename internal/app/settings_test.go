package app

import (
	"testing"
	"time"

	"github.com/rentalworks/partyrent/internal/booking"
)

// cachedSettings builds a manager with a pre-warmed cache so tests never
// touch a database.
func cachedSettings(values map[string]string) *SettingsManager {
	cache := make(map[string]string, len(values))
	for k, v := range values {
		cache[k] = v
	}
	return &SettingsManager{
		cache:    cache,
		loadedAt: time.Now(),
		ttl:      time.Hour,
	}
}

func TestSettingsDefaults(t *testing.T) {
	m := cachedSettings(nil)

	if got := m.TaxRate().String(); got != "0.08" {
		t.Errorf("TaxRate default = %s, want 0.08", got)
	}
	if got := m.DepositFraction().String(); got != "0.25" {
		t.Errorf("DepositFraction default = %s, want 0.25", got)
	}
	if got := m.HorizonDays(); got != 365 {
		t.Errorf("HorizonDays default = %d, want 365", got)
	}
	if got := m.Buffers(); got != (booking.Buffers{}) {
		t.Errorf("Buffers default = %+v, want zero buffers", got)
	}
}

func TestSettingsOverrides(t *testing.T) {
	m := cachedSettings(map[string]string{
		"billing.tax_rate":         "0.095",
		"billing.deposit_fraction": "0.5",
		"booking.pre_days":         "1",
		"booking.post_days":        "2",
		"booking.horizon_days":     "90",
	})

	if got := m.TaxRate().String(); got != "0.095" {
		t.Errorf("TaxRate = %s, want 0.095", got)
	}
	if got := m.DepositFraction().String(); got != "0.5" {
		t.Errorf("DepositFraction = %s, want 0.5", got)
	}
	if got := m.HorizonDays(); got != 90 {
		t.Errorf("HorizonDays = %d, want 90", got)
	}
	want := booking.Buffers{PreDays: 1, PostDays: 2}
	if got := m.Buffers(); got != want {
		t.Errorf("Buffers = %+v, want %+v", got, want)
	}
}

func TestSettingsInvalidDecimalFallsBack(t *testing.T) {
	m := cachedSettings(map[string]string{
		"billing.tax_rate": "not-a-number",
	})
	if got := m.TaxRate().String(); got != "0.08" {
		t.Errorf("TaxRate with invalid setting = %s, want fallback 0.08", got)
	}
}
