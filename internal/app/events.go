package app

import (
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/pkg/metrics"
	"go.uber.org/zap"
)

// EventOrderCreated fires after the checkout transaction commits. Payload is
// the order id.
const EventOrderCreated = "order:created"

func (a *Application) setupEvents() {
	if err := a.subscribeOrderEvents(a.onOrderCreated); err != nil {
		zap.L().Error("failed to subscribe order events", zap.Error(err))
	}
}

// subscribeOrderEvents registers handler asynchronously so checkout responses
// never wait on downstream work such as confirmation mail.
func (a *Application) subscribeOrderEvents(handler func(int64)) error {
	return a.bus.SubscribeAsync(EventOrderCreated, handler, false)
}

// PublishOrderCreated notifies subscribers that an order was placed.
func (a *Application) PublishOrderCreated(orderID int64) {
	a.bus.Publish(EventOrderCreated, orderID)
}

func (a *Application) onOrderCreated(orderID int64) {
	metrics.CounterInc(metrics.MetricOrdersCreated)

	var order domain.Order
	if err := a.gormDB.First(&order, orderID).Error; err != nil {
		zap.L().Error("order event for unknown order", zap.Int64("order_id", orderID), zap.Error(err))
		return
	}
	var items []domain.OrderItem
	if err := a.gormDB.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		zap.L().Error("failed to load order items", zap.Int64("order_id", orderID), zap.Error(err))
		return
	}

	zap.L().Info("order placed",
		zap.String("number", order.Number),
		zap.String("customer", order.CustomerEmail),
		zap.String("total", order.Total.StringFixed(2)))

	a.sendOrderConfirmation(&order, items)
}
