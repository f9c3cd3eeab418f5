package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderConfirmed = "confirmed"
	OrderCanceled  = "canceled"
)

// Order snapshots the cart totals at checkout time. Totals are never
// recomputed from the items afterwards, so catalog price edits do not alter
// placed orders.
type Order struct {
	ID              int64           `gorm:"primaryKey" json:"id,string"`
	Number          string          `gorm:"size:32;uniqueIndex" json:"number"`
	CustomerName    string          `gorm:"size:128" json:"customer_name"`
	CustomerEmail   string          `gorm:"size:128;index" json:"customer_email"`
	CustomerPhone   string          `gorm:"size:32" json:"customer_phone"`
	CustomerAddress string          `gorm:"size:255" json:"customer_address"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)" json:"subtotal"`
	Tax             decimal.Decimal `gorm:"type:numeric(12,2)" json:"tax"`
	DepositEstimate decimal.Decimal `gorm:"type:numeric(12,2)" json:"deposit_estimate"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)" json:"total"`
	Status          string          `gorm:"size:16;index" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one booked line of an order with its price snapshot.
type OrderItem struct {
	ID        int64           `gorm:"primaryKey" json:"id,string"`
	OrderID   int64           `gorm:"index" json:"order_id,string"`
	ItemID    int64           `gorm:"index" json:"item_id,string"`
	Name      string          `gorm:"size:128" json:"name"`
	Qty       int             `json:"qty"`
	StartDate string          `gorm:"size:10" json:"start_date"`
	EndDate   string          `gorm:"size:10" json:"end_date"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName Specify table name
func (OrderItem) TableName() string {
	return "order_item"
}
