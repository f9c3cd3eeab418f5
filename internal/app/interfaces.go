package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"github.com/rentalworks/partyrent/config"
	"github.com/rentalworks/partyrent/internal/booking"
	"gorm.io/gorm"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SettingsProvider provides runtime settings access
type SettingsProvider interface {
	Settings() *SettingsManager
	GetSettingsStringValue(category, name string) string
	GetSettingsInt64Value(category, name string) int64
	GetSettingsBoolValue(category, name string) bool
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// EventBusProvider provides the in-process event bus
type EventBusProvider interface {
	Bus() EventBus.Bus
}

// CartProvider provides the shopper cart store
type CartProvider interface {
	Carts() *booking.CartStore
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	DBProvider
	ConfigProvider
	SettingsProvider
	SchedulerProvider
	EventBusProvider
	CartProvider

	// Application lifecycle methods
	MigrateDB(track bool) error
	InitDb()
	DropAll()
	// PublishOrderCreated notifies subscribers that an order was placed
	PublishOrderCreated(orderID int64)
	// RunSchedulerNow executes one registered scheduler immediately
	RunSchedulerNow(id int64) error
}
