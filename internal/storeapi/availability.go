package storeapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/metrics"
)

func registerAvailabilityRoutes() {
	webserver.StoreGET("/items/:slug/availability", checkItemAvailability)
	webserver.StoreGET("/items/:slug/disabled-dates", itemDisabledDates)
}

func loadItemWithReservations(c echo.Context, slug string) (*domain.InventoryItem, []domain.Reservation, error) {
	ctx := c.Request().Context()
	invRepo := booking.NewGormInventoryRepository(GetDB(c))
	resRepo := booking.NewGormReservationRepository(GetDB(c))

	item, err := invRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	reservations, err := resRepo.ConfirmedForItem(ctx, item.ID)
	if err != nil {
		return nil, nil, err
	}
	return item, reservations, nil
}

func checkItemAvailability(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))

	start, err := booking.ParseDate(c.QueryParam("start"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_DATE", "start must be yyyy-MM-dd", nil)
	}
	end, err := booking.ParseDate(c.QueryParam("end"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_DATE", "end must be yyyy-MM-dd", nil)
	}
	if !start.Before(end) {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE", "start must be before end", nil)
	}

	qty := 1
	if q, err := strconv.Atoi(c.QueryParam("qty")); err == nil && q > 0 {
		qty = q
	}

	item, reservations, err := loadItemWithReservations(c, slug)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Item not found", nil)
	}

	result := booking.CheckAvailability(item, reservations, start, end, qty, 0,
		GetApp(c).Settings().Buffers())
	metrics.CounterInc(metrics.MetricAvailabilityChecks)
	return ok(c, result)
}

func itemDisabledDates(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))

	qty := 1
	if q, err := strconv.Atoi(c.QueryParam("qty")); err == nil && q > 0 {
		qty = q
	}

	item, reservations, err := loadItemWithReservations(c, slug)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Item not found", nil)
	}

	settings := GetApp(c).Settings()
	disabled := booking.DisabledDatesForItem(item, reservations, qty,
		settings.HorizonDays(), booking.Today(), settings.Buffers())
	metrics.CounterInc(metrics.MetricAvailabilityChecks)
	return ok(c, map[string]interface{}{
		"item_id":        item.ID,
		"slug":           item.Slug,
		"disabled_dates": disabled,
	})
}
