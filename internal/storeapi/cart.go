package storeapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
)

func registerCartRoutes() {
	webserver.StorePOST("/carts", createCart)
	webserver.StoreGET("/carts/:id", getCart)
	webserver.StorePOST("/carts/:id/lines", addCartLine)
	webserver.StorePATCH("/carts/:id/lines/:lineId", updateCartLine)
	webserver.StoreDELETE("/carts/:id/lines/:lineId", removeCartLine)
	webserver.StoreDELETE("/carts/:id", clearCart)
	webserver.StoreGET("/carts/:id/totals", cartTotals)
}

type cartLinePayload struct {
	ItemID    int64  `json:"item_id,string"`
	Slug      string `json:"slug"`
	Qty       int    `json:"qty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func cartFailStatus(err error) int {
	if errors.Is(err, booking.ErrCartNotFound) || errors.Is(err, booking.ErrLineNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func createCart(c echo.Context) error {
	id := GetApp(c).Carts().Create()
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"cart_id": id,
		"lines":   []booking.LineItem{},
	})
}

func getCart(c echo.Context) error {
	cartID := c.Param("id")
	lines, err := GetApp(c).Carts().Lines(cartID)
	if err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}
	return ok(c, map[string]interface{}{
		"cart_id": cartID,
		"lines":   lines,
	})
}

// verifyLineAvailability runs the availability engine for a prospective cart
// line, excluding no reservation. extra carries pending demand that is not in
// the reservation table yet, such as the cart's other lines at checkout.
// Returns the engine result on a conflict.
func verifyLineAvailability(c echo.Context, itemID int64, start, end booking.Date, qty int, extra []domain.Reservation) (*booking.AvailabilityResult, error) {
	ctx := c.Request().Context()
	invRepo := booking.NewGormInventoryRepository(GetDB(c))
	resRepo := booking.NewGormReservationRepository(GetDB(c))

	item, err := invRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	reservations, err := resRepo.ConfirmedForItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	reservations = append(reservations, extra...)
	result := booking.CheckAvailability(item, reservations, start, end, qty, 0,
		GetApp(c).Settings().Buffers())
	if !result.Available {
		return &result, nil
	}
	return nil, nil
}

func addCartLine(c echo.Context) error {
	cartID := c.Param("id")
	var payload cartLinePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
	}
	if payload.Qty < 1 {
		payload.Qty = 1
	}

	start, err := booking.ParseDate(payload.StartDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_DATE", "start_date must be yyyy-MM-dd", nil)
	}
	end, err := booking.ParseDate(payload.EndDate)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_DATE", "end_date must be yyyy-MM-dd", nil)
	}
	if !start.Before(end) {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE", "start_date must be before end_date", nil)
	}

	ctx := c.Request().Context()
	invRepo := booking.NewGormInventoryRepository(GetDB(c))

	item, err := invRepo.GetByID(ctx, payload.ItemID)
	if err != nil && strings.TrimSpace(payload.Slug) != "" {
		item, err = invRepo.GetBySlug(ctx, strings.TrimSpace(payload.Slug))
	}
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Item not found", nil)
	}

	conflict, err := verifyLineAvailability(c, item.ID, start, end, payload.Qty, nil)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "SERVER_ERROR", err.Error(), nil)
	}
	if conflict != nil {
		return fail(c, http.StatusConflict, "NOT_AVAILABLE", "Requested dates are not available", conflict)
	}

	line, err := GetApp(c).Carts().Add(cartID, booking.LineItem{
		ItemID:    item.ID,
		Name:      item.Name,
		Qty:       payload.Qty,
		Start:     start,
		End:       end,
		UnitPrice: item.PricePerDay,
	})
	if err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}
	return c.JSON(http.StatusCreated, line)
}

func updateCartLine(c echo.Context) error {
	cartID := c.Param("id")
	lineID := c.Param("lineId")
	var payload cartLinePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
	}

	patch := booking.LinePatch{Qty: payload.Qty}
	if payload.StartDate != "" {
		start, err := booking.ParseDate(payload.StartDate)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_DATE", "start_date must be yyyy-MM-dd", nil)
		}
		patch.Start = start
	}
	if payload.EndDate != "" {
		end, err := booking.ParseDate(payload.EndDate)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_DATE", "end_date must be yyyy-MM-dd", nil)
		}
		patch.End = end
	}

	carts := GetApp(c).Carts()
	current, err := findCartLine(carts, cartID, lineID)
	if err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}

	// Evaluate the patched shape of the line before committing it.
	next := *current
	if patch.Qty > 0 {
		next.Qty = patch.Qty
	}
	if !patch.Start.IsZero() {
		next.Start = patch.Start
	}
	if !patch.End.IsZero() {
		next.End = patch.End
	}
	if !next.Start.Before(next.End) {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE", "start_date must be before end_date", nil)
	}

	conflict, err := verifyLineAvailability(c, next.ItemID, next.Start, next.End, next.Qty, nil)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "SERVER_ERROR", err.Error(), nil)
	}
	if conflict != nil {
		return fail(c, http.StatusConflict, "NOT_AVAILABLE", "Requested dates are not available", conflict)
	}

	line, err := carts.Update(cartID, lineID, patch)
	if err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}
	return ok(c, line)
}

func findCartLine(carts *booking.CartStore, cartID, lineID string) (*booking.LineItem, error) {
	lines, err := carts.Lines(cartID)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].ID == lineID {
			return &lines[i], nil
		}
	}
	return nil, booking.ErrLineNotFound
}

func removeCartLine(c echo.Context) error {
	if err := GetApp(c).Carts().Remove(c.Param("id"), c.Param("lineId")); err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}
	return c.NoContent(http.StatusNoContent)
}

func clearCart(c echo.Context) error {
	if err := GetApp(c).Carts().Clear(c.Param("id")); err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}
	return c.NoContent(http.StatusNoContent)
}

func cartTotals(c echo.Context) error {
	settings := GetApp(c).Settings()
	totals, err := GetApp(c).Carts().Totals(c.Param("id"),
		settings.TaxRate(), settings.DepositFraction())
	if err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}
	return ok(c, totals)
}
