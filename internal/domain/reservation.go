package domain

import "time"

// Reservation statuses. Only confirmed reservations consume stock.
const (
	ReservationConfirmed = "confirmed"
	ReservationCanceled  = "canceled"
)

// Reservation holds requestedQty units of an item over the half-open calendar
// range [StartDate, EndDate). Dates are plain yyyy-MM-dd strings with no
// time-of-day semantics.
type Reservation struct {
	ID        int64     `gorm:"primaryKey" json:"id,string" form:"id"`
	ItemID    int64     `gorm:"index" json:"item_id,string" form:"item_id"`
	OrderID   int64     `gorm:"index" json:"order_id,string" form:"order_id"` // 0 for manually entered reservations
	Qty       int       `json:"qty" form:"qty"`
	StartDate string    `gorm:"size:10" json:"start_date" form:"start_date"`
	EndDate   string    `gorm:"size:10" json:"end_date" form:"end_date"`
	Status    string    `gorm:"size:16;index" json:"status" form:"status"`
	Remark    string    `json:"remark" form:"remark"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Reservation) TableName() string {
	return "reservation"
}
