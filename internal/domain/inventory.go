package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Deposit policy kinds carried on an inventory item. An empty type means the
// item has no per-item policy and the storewide deposit fraction applies.
const (
	DepositFlat    = "flat"
	DepositPercent = "percent"
)

// InventoryItem is one rentable product with a finite fleet size.
// QtyAvailable is the total fleet, not the currently free count; free stock
// per day is derived by the booking engine from confirmed reservations.
type InventoryItem struct {
	ID           int64           `gorm:"primaryKey" json:"id,string" form:"id"`
	Slug         string          `gorm:"size:100;uniqueIndex" json:"slug" form:"slug"`
	Name         string          `gorm:"index" json:"name" form:"name"`
	Description  string          `gorm:"type:text" json:"description" form:"description"`
	Category     string          `gorm:"size:64;index" json:"category" form:"category"`
	Tags         string          `gorm:"size:255" json:"tags" form:"tags"`     // comma separated
	Images       string          `gorm:"size:1024" json:"images" form:"images"` // comma separated URLs
	QtyAvailable int             `json:"qty_available" form:"qty_available"`
	PricePerDay  decimal.Decimal `gorm:"type:numeric(12,2)" json:"price_per_day" form:"price_per_day"`
	DepositType  string          `gorm:"size:16" json:"deposit_type" form:"deposit_type"`
	DepositValue decimal.Decimal `gorm:"type:numeric(12,2)" json:"deposit_value" form:"deposit_value"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TableName Specify table name
func (InventoryItem) TableName() string {
	return "inventory_item"
}

// TagList splits the comma-joined tags column.
func (i InventoryItem) TagList() []string {
	return splitCSV(i.Tags)
}

// ImageList splits the comma-joined images column.
func (i InventoryItem) ImageList() []string {
	return splitCSV(i.Images)
}

func splitCSV(s string) []string {
	out := make([]string, 0, 4)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
