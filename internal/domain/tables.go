package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysOpr{},
	&SysScheduler{},
	// Rental
	&InventoryItem{},
	&Reservation{},
	&Order{},
	&OrderItem{},
}
