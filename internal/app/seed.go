package app

import (
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/pkg/common"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// seedData returns the demo catalog plus sample confirmed reservations spread
// over the next 30 days.
func seedData() ([]domain.InventoryItem, []domain.Reservation) {
	items := []domain.InventoryItem{
		{
			ID: common.UUIDint64(), Slug: "chiavari-chair", Name: "Chiavari Chair",
			Description: "Elegant gold chiavari chairs perfect for weddings and formal events. Comfortable and stylish seating option.",
			Category:    "Seating", Tags: "wedding,formal,chair,gold",
			Images:       "/images/chiavari-chair-1.jpg,/images/chiavari-chair-2.jpg",
			QtyAvailable: 200, PricePerDay: dec("3.50"),
			DepositType: domain.DepositFlat, DepositValue: dec("1.00"),
		},
		{
			ID: common.UUIDint64(), Slug: "20x20-tent", Name: "20x20 Frame Tent",
			Description: "Professional frame tent providing shelter for outdoor events. Seats approximately 40 guests.",
			Category:    "Tents", Tags: "tent,outdoor,wedding,party",
			Images:       "/images/tent-20x20-1.jpg,/images/tent-20x20-2.jpg",
			QtyAvailable: 5, PricePerDay: dec("150.00"),
			DepositType: domain.DepositPercent, DepositValue: dec("25"),
		},
		{
			ID: common.UUIDint64(), Slug: "6ft-folding-table", Name: "6ft Folding Table",
			Description: "Sturdy rectangular folding table seats 6-8 people. Perfect for dining and display.",
			Category:    "Tables", Tags: "table,folding,rectangular,dining",
			Images:       "/images/folding-table-1.jpg,/images/folding-table-2.jpg",
			QtyAvailable: 50, PricePerDay: dec("8.00"),
			DepositType: domain.DepositFlat, DepositValue: dec("5.00"),
		},
		{
			ID: common.UUIDint64(), Slug: "bounce-house", Name: "Castle Bounce House",
			Description: "Large inflatable bounce house with castle theme. Great for kids parties and family events.",
			Category:    "Inflatables", Tags: "bounce house,kids,inflatable,castle",
			Images:       "/images/bounce-house-1.jpg,/images/bounce-house-2.jpg",
			QtyAvailable: 3, PricePerDay: dec("200.00"),
			DepositType: domain.DepositPercent, DepositValue: dec("50"),
		},
		{
			ID: common.UUIDint64(), Slug: "cotton-candy-machine", Name: "Cotton Candy Machine",
			Description: "Professional cotton candy machine with supplies. Includes cones and flavored sugar.",
			Category:    "Concessions", Tags: "cotton candy,concession,sweet,kids",
			Images:       "/images/cotton-candy-1.jpg,/images/cotton-candy-2.jpg",
			QtyAvailable: 2, PricePerDay: dec("75.00"),
			DepositType: domain.DepositFlat, DepositValue: dec("50.00"),
		},
		{
			ID: common.UUIDint64(), Slug: "popcorn-machine", Name: "Popcorn Machine",
			Description: "Vintage-style popcorn machine with supplies. Includes kernels, oil, and seasoning.",
			Category:    "Concessions", Tags: "popcorn,concession,vintage,snack",
			Images:       "/images/popcorn-machine-1.jpg,/images/popcorn-machine-2.jpg",
			QtyAvailable: 2, PricePerDay: dec("65.00"),
			DepositType: domain.DepositFlat, DepositValue: dec("40.00"),
		},
		{
			ID: common.UUIDint64(), Slug: "led-uplight", Name: "LED Uplight",
			Description: "Color-changing LED uplight for ambient lighting. Battery powered with remote control.",
			Category:    "Lighting", Tags: "LED,uplight,color,wireless",
			Images:       "/images/led-uplight-1.jpg,/images/led-uplight-2.jpg",
			QtyAvailable: 40, PricePerDay: dec("12.00"),
			DepositType: domain.DepositFlat, DepositValue: dec("5.00"),
		},
		{
			ID: common.UUIDint64(), Slug: "photo-booth", Name: "Photo Booth",
			Description: "Professional photo booth setup with props and instant printing. Great for events.",
			Category:    "Entertainment", Tags: "photo booth,photos,props,entertainment",
			Images:       "/images/photo-booth-1.jpg,/images/photo-booth-2.jpg",
			QtyAvailable: 1, PricePerDay: dec("300.00"),
			DepositType: domain.DepositPercent, DepositValue: dec("30"),
		},
		{
			ID: common.UUIDint64(), Slug: "generator", Name: "Generac Generator",
			Description: "Portable generator for outdoor events. Provides reliable power for equipment.",
			Category:    "Power", Tags: "generator,power,outdoor,portable",
			Images:       "/images/generator-1.jpg,/images/generator-2.jpg",
			QtyAvailable: 2, PricePerDay: dec("85.00"),
			DepositType: domain.DepositFlat, DepositValue: dec("100.00"),
		},
		{
			ID: common.UUIDint64(), Slug: "patio-heater", Name: "Patio Heater",
			Description: "Outdoor propane patio heater. Perfect for extending outdoor events into cooler weather.",
			Category:    "Heating", Tags: "heater,propane,outdoor,warmth",
			Images:       "/images/patio-heater-1.jpg,/images/patio-heater-2.jpg",
			QtyAvailable: 8, PricePerDay: dec("35.00"),
			DepositType: domain.DepositFlat, DepositValue: dec("25.00"),
		},
	}

	today := booking.Today()
	day := func(n int) string { return today.AddDays(n).String() }

	samples := []struct {
		itemIdx    int
		qty        int
		start, end int
	}{
		{0, 50, 3, 5},  // chiavari chairs
		{1, 2, 7, 9},   // 20x20 tent
		{3, 1, 5, 6},   // bounce house
		{7, 1, 12, 14}, // photo booth
		{2, 20, 15, 17}, // folding tables
		{6, 15, 20, 22}, // LED uplights
	}

	reservations := make([]domain.Reservation, 0, len(samples))
	for _, s := range samples {
		reservations = append(reservations, domain.Reservation{
			ID:        common.UUIDint64(),
			ItemID:    items[s.itemIdx].ID,
			Qty:       s.qty,
			StartDate: day(s.start),
			EndDate:   day(s.end),
			Status:    domain.ReservationConfirmed,
			Remark:    "demo seed",
		})
	}
	return items, reservations
}
