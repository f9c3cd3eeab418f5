package app

import (
	"errors"
	"sync"
	"time"

	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultSettingsCacheTTL bounds how stale a cached sys_config read may be.
const DefaultSettingsCacheTTL = 30 * time.Second

// SettingsManager reads runtime settings from the sys_config table with a
// small TTL cache. Engines never read it directly; callers snapshot values
// and pass them in.
type SettingsManager struct {
	db       *gorm.DB
	mu       sync.RWMutex
	cache    map[string]string
	loadedAt time.Time
	ttl      time.Duration
}

func NewSettingsManager(db *gorm.DB) *SettingsManager {
	return &SettingsManager{
		db:    db,
		cache: make(map[string]string),
		ttl:   DefaultSettingsCacheTTL,
	}
}

func settingsKey(category, name string) string {
	return category + "." + name
}

func (m *SettingsManager) refresh() {
	var rows []domain.SysConfig
	if err := m.db.Find(&rows).Error; err != nil {
		zap.L().Error("failed to load sys_config", zap.Error(err))
		return
	}
	cache := make(map[string]string, len(rows))
	for _, row := range rows {
		cache[settingsKey(row.Type, row.Name)] = row.Value
	}
	m.cache = cache
	m.loadedAt = time.Now()
}

func (m *SettingsManager) get(category, name string) string {
	m.mu.RLock()
	fresh := time.Since(m.loadedAt) < m.ttl
	value, ok := m.cache[settingsKey(category, name)]
	m.mu.RUnlock()
	if fresh && ok {
		return value
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if time.Since(m.loadedAt) >= m.ttl {
		m.refresh()
	}
	return m.cache[settingsKey(category, name)]
}

func (m *SettingsManager) GetString(category, name string) string {
	return m.get(category, name)
}

func (m *SettingsManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(m.get(category, name))
}

func (m *SettingsManager) GetInt(category, name string) int {
	return cast.ToInt(m.get(category, name))
}

func (m *SettingsManager) GetBool(category, name string) bool {
	return cast.ToBool(m.get(category, name))
}

// Set upserts a setting and refreshes the cache entry immediately.
func (m *SettingsManager) Set(category, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var row domain.SysConfig
	err := m.db.Where("type = ? AND name = ?", category, name).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		err = m.db.Create(&domain.SysConfig{Type: category, Name: name, Value: value}).Error
	case err == nil:
		err = m.db.Model(&domain.SysConfig{}).
			Where("id = ?", row.ID).
			Updates(map[string]interface{}{"value": value, "updated_at": time.Now()}).Error
	}
	if err != nil {
		return err
	}
	m.cache[settingsKey(category, name)] = value
	return nil
}

func (m *SettingsManager) decimalOr(category, name string, fallback decimal.Decimal) decimal.Decimal {
	raw := m.get(category, name)
	if raw == "" {
		return fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		zap.L().Warn("invalid decimal setting",
			zap.String("key", settingsKey(category, name)),
			zap.String("value", raw))
		return fallback
	}
	return d
}

// TaxRate returns the storewide sales tax rate.
func (m *SettingsManager) TaxRate() decimal.Decimal {
	return m.decimalOr("billing", "tax_rate", decimal.NewFromFloat(0.08))
}

// DepositFraction returns the uniform deposit-estimate fraction.
func (m *SettingsManager) DepositFraction() decimal.Decimal {
	return m.decimalOr("billing", "deposit_fraction", booking.DefaultDepositFraction)
}

// Buffers returns the turnaround buffer configuration.
func (m *SettingsManager) Buffers() booking.Buffers {
	return booking.Buffers{
		PreDays:  m.GetInt("booking", "pre_days"),
		PostDays: m.GetInt("booking", "post_days"),
	}
}

// HorizonDays returns the calendar pre-computation horizon.
func (m *SettingsManager) HorizonDays() int {
	if v := m.GetInt("booking", "horizon_days"); v > 0 {
		return v
	}
	return 365
}
