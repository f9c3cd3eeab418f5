package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/common"
)

type reservationPayload struct {
	ItemID    int64  `json:"item_id,string"`
	Qty       int    `json:"qty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Remark    string `json:"remark"`
}

func registerReservationRoutes() {
	webserver.ApiGET("/reservations", listReservations)
	webserver.ApiGET("/reservations/:id", getReservation)
	webserver.ApiPOST("/reservations", createReservation)
	webserver.ApiPUT("/reservations/:id", updateReservation)
	webserver.ApiPOST("/reservations/:id/cancel", cancelReservation)
}

// parseAdminDate accepts lenient human date input on the admin side and
// normalizes it to the strict wire format.
func parseAdminDate(s string) (booking.Date, error) {
	s = strings.TrimSpace(s)
	if d, err := booking.ParseDate(s); err == nil {
		return d, nil
	}
	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return booking.Date{}, err
	}
	return booking.NewDate(t.Year(), t.Month(), t.Day()), nil
}

func (p *reservationPayload) dates() (start, end booking.Date, msg string) {
	start, err := parseAdminDate(p.StartDate)
	if err != nil {
		return start, end, "Invalid start date"
	}
	end, err = parseAdminDate(p.EndDate)
	if err != nil {
		return start, end, "Invalid end date"
	}
	if !start.Before(end) {
		return start, end, "Start date must be before end date"
	}
	return start, end, ""
}

func listReservations(c echo.Context) error {
	page, pageSize := parsePagination(c)
	itemID, _ := strconv.ParseInt(c.QueryParam("item_id"), 10, 64)
	status := strings.TrimSpace(c.QueryParam("status"))

	repo := booking.NewGormReservationRepository(GetDB(c))
	reservations, total, err := repo.List(c.Request().Context(), itemID, status, page, pageSize)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query reservations", err.Error())
	}
	return paged(c, reservations, total, page, pageSize)
}

func getReservation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID", nil)
	}
	repo := booking.NewGormReservationRepository(GetDB(c))
	res, err := repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found", nil)
	}
	return ok(c, res)
}

// checkReservationSlot runs the availability engine for a prospective
// reservation, excluding the reservation's own id when editing.
func checkReservationSlot(c echo.Context, itemID int64, start, end booking.Date, qty int, excludeID int64) (*booking.AvailabilityResult, error) {
	ctx := c.Request().Context()
	invRepo := booking.NewGormInventoryRepository(GetDB(c))
	resRepo := booking.NewGormReservationRepository(GetDB(c))

	item, err := invRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	reservations, err := resRepo.ConfirmedForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	result := booking.CheckAvailability(item, reservations, start, end, qty,
		excludeID, GetApp(c).Settings().Buffers())
	return &result, nil
}

func createReservation(c echo.Context) error {
	var payload reservationPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse reservation", err.Error())
	}
	if payload.Qty < 1 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Qty must be >= 1", nil)
	}
	start, end, msg := payload.dates()
	if msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	result, err := checkReservationSlot(c, payload.ItemID, start, end, payload.Qty, 0)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found", err.Error())
	}
	if !result.Available {
		return fail(c, http.StatusConflict, "NOT_AVAILABLE", "Requested range is not available", result)
	}

	now := time.Now()
	res := domain.Reservation{
		ID:        common.UUIDint64(),
		ItemID:    payload.ItemID,
		Qty:       payload.Qty,
		StartDate: start.String(),
		EndDate:   end.String(),
		Status:    domain.ReservationConfirmed,
		Remark:    strings.TrimSpace(payload.Remark),
		CreatedAt: now,
		UpdatedAt: now,
	}
	repo := booking.NewGormReservationRepository(GetDB(c))
	if err := repo.Create(c.Request().Context(), &res); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create reservation", err.Error())
	}
	return ok(c, res)
}

func updateReservation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID", nil)
	}
	repo := booking.NewGormReservationRepository(GetDB(c))
	res, err := repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found", nil)
	}

	var payload reservationPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse reservation", err.Error())
	}
	if payload.Qty < 1 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Qty must be >= 1", nil)
	}
	start, end, msg := payload.dates()
	if msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	itemID := payload.ItemID
	if itemID == 0 {
		itemID = res.ItemID
	}

	// The reservation being edited must not block itself.
	result, err := checkReservationSlot(c, itemID, start, end, payload.Qty, res.ID)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found", err.Error())
	}
	if !result.Available {
		return fail(c, http.StatusConflict, "NOT_AVAILABLE", "Requested range is not available", result)
	}

	res.ItemID = itemID
	res.Qty = payload.Qty
	res.StartDate = start.String()
	res.EndDate = end.String()
	res.Remark = strings.TrimSpace(payload.Remark)
	res.UpdatedAt = time.Now()

	if err := repo.Update(c.Request().Context(), res); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update reservation", err.Error())
	}
	return ok(c, res)
}

func cancelReservation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID", nil)
	}
	repo := booking.NewGormReservationRepository(GetDB(c))
	if err := repo.Cancel(c.Request().Context(), id); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to cancel reservation", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id, "status": domain.ReservationCanceled})
}
