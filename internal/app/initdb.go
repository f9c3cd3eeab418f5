package app

import (
	"errors"
	"strings"
	"time"

	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *Application) checkSuper() {
	const superUsername = "admin"
	const defaultPassword = "partyrent"

	hashedPassword, err := common.HashPassword(defaultPassword)
	if err != nil {
		zap.L().Error("failed to hash default password", zap.Error(err))
		return
	}

	var operator domain.SysOpr
	err = a.gormDB.Where("username = ?", superUsername).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			ID:        common.UUIDint64(),
			Realname:  "administrator",
			Email:     "N/A",
			Username:  superUsername,
			Password:  hashedPassword,
			Level:     "super",
			Status:    common.ENABLED,
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("username", superUsername))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(operator.Password) == ""
	resetStatus := !strings.EqualFold(operator.Status, common.ENABLED)
	if !resetPassword && !resetStatus {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = hashedPassword
	}
	if resetStatus {
		updates["status"] = common.ENABLED
	}

	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}
	zap.L().Warn("repaired default super admin account",
		zap.String("username", superUsername),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("statusEnabled", resetStatus))
}

type settingDef struct {
	Key     string
	Default string
	Remark  string
}

var defaultSettings = []settingDef{
	{"billing.tax_rate", "0.08", "Sales tax rate applied to cart subtotals"},
	{"billing.deposit_fraction", "0.25", "Uniform refundable-deposit fraction of each line total"},
	{"booking.pre_days", "0", "Buffer days blocked before each reservation"},
	{"booking.post_days", "1", "Buffer days blocked after each reservation"},
	{"booking.horizon_days", "365", "Forward horizon for calendar blocked-date precomputation"},
	{"store.cancellation_policy", "Cancellations must be made 48 hours prior to event date for full refund.", "Cancellation policy shown at checkout"},
	{"store.delivery_enabled", "true", "Whether delivery is offered"},
	{"store.pickup_enabled", "true", "Whether customer pickup is offered"},
	{"mail.smtp_host", "", "SMTP host for order confirmation mail (empty disables mail)"},
	{"mail.smtp_port", "25", "SMTP port"},
	{"mail.smtp_user", "", "SMTP username"},
	{"mail.smtp_passwd", "", "SMTP password"},
	{"mail.from", "noreply@partyrent.local", "Confirmation mail sender address"},
	{"scheduler.max_workers", "8", "Worker pool size for calendar snapshot jobs"},
}

func (a *Application) checkSettings() {
	for sortid, def := range defaultSettings {
		parts := strings.SplitN(def.Key, ".", 2)
		if len(parts) != 2 {
			continue
		}
		category, name := parts[0], parts[1]

		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", category, name).
			Count(&count)
		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				Sort:   sortid,
				Type:   category,
				Name:   name,
				Value:  def.Default,
				Remark: def.Remark,
			})
			zap.L().Info("initialized config",
				zap.String("key", def.Key),
				zap.String("default", def.Default))
		}
	}
}

// checkSeedData loads the demo catalog and sample reservations on first boot.
func (a *Application) checkSeedData() {
	var count int64
	a.gormDB.Model(&domain.InventoryItem{}).Count(&count)
	if count > 0 {
		return
	}

	items, reservations := seedData()
	for i := range items {
		if err := a.gormDB.Create(&items[i]).Error; err != nil {
			zap.L().Error("failed to seed inventory item",
				zap.String("slug", items[i].Slug), zap.Error(err))
		}
	}
	for i := range reservations {
		if err := a.gormDB.Create(&reservations[i]).Error; err != nil {
			zap.L().Error("failed to seed reservation", zap.Error(err))
		}
	}
	zap.L().Info("seeded demo catalog",
		zap.Int("items", len(items)),
		zap.Int("reservations", len(reservations)))
}

// checkSchedulers registers the built-in background tasks when missing.
func (a *Application) checkSchedulers() {
	defaults := []domain.SysScheduler{
		{
			Name:     "calendar snapshot",
			TaskType: TaskCalendarSnapshot,
			Interval: 6 * 3600,
			Status:   common.ENABLED,
			Remark:   "blocked-day metrics over the booking horizon",
		},
		{
			Name:     "orders rollup",
			TaskType: TaskOrdersRollup,
			Interval: 24 * 3600,
			Status:   common.ENABLED,
			Remark:   "daily order count metric",
		},
	}
	for i := range defaults {
		var count int64
		a.gormDB.Model(&domain.SysScheduler{}).
			Where("task_type = ?", defaults[i].TaskType).
			Count(&count)
		if count > 0 {
			continue
		}
		defaults[i].ID = common.UUIDint64()
		defaults[i].NextRunAt = time.Now().Add(time.Duration(defaults[i].Interval) * time.Second)
		if err := a.gormDB.Create(&defaults[i]).Error; err != nil {
			zap.L().Error("failed to register scheduler",
				zap.String("task_type", defaults[i].TaskType), zap.Error(err))
			continue
		}
		zap.L().Info("registered scheduler",
			zap.String("name", defaults[i].Name),
			zap.String("task_type", defaults[i].TaskType))
	}
}
