package storeapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/common"
)

func registerCheckoutRoutes() {
	webserver.StorePOST("/checkout", placeOrder)
	webserver.StoreGET("/orders/:number", getOrderConfirmation)
}

type checkoutPayload struct {
	CartID   string `json:"cart_id"`
	Customer struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"customer"`
}

func newOrderNumber() string {
	return fmt.Sprintf("PRP-%d", time.Now().UnixMilli())
}

// siblingDemand turns the cart's other lines for line skip's item into
// reservation records the availability engine can count.
func siblingDemand(lines []booking.LineItem, skip int) []domain.Reservation {
	var extra []domain.Reservation
	for i, other := range lines {
		if i == skip || other.ItemID != lines[skip].ItemID {
			continue
		}
		extra = append(extra, domain.Reservation{
			ItemID:    other.ItemID,
			Qty:       other.Qty,
			StartDate: other.Start.String(),
			EndDate:   other.End.String(),
			Status:    domain.ReservationConfirmed,
		})
	}
	return extra
}

func placeOrder(c echo.Context) error {
	var payload checkoutPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
	}
	if strings.TrimSpace(payload.Customer.Name) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_CUSTOMER", "customer name is required", nil)
	}

	appCtx := GetApp(c)
	lines, err := appCtx.Carts().Lines(payload.CartID)
	if err != nil {
		return fail(c, cartFailStatus(err), "NOT_FOUND", err.Error(), nil)
	}
	if len(lines) == 0 {
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "cart has no lines", nil)
	}

	// Every line is re-checked against the live reservation table right
	// before the order is written. The cart's other lines for the same item
	// count as pending demand so two overlapping lines cannot jointly
	// overbook even though each would fit alone.
	for i, line := range lines {
		conflict, err := verifyLineAvailability(c, line.ItemID, line.Start, line.End, line.Qty,
			siblingDemand(lines, i))
		if err != nil {
			return fail(c, http.StatusInternalServerError, "SERVER_ERROR", err.Error(), nil)
		}
		if conflict != nil {
			return fail(c, http.StatusConflict, "NOT_AVAILABLE",
				fmt.Sprintf("%s is not available for the selected dates", line.Name), conflict)
		}
	}

	settings := appCtx.Settings()
	totals := booking.CartTotals(lines, settings.TaxRate(), settings.DepositFraction())

	order := domain.Order{
		ID:              common.UUIDint64(),
		Number:          newOrderNumber(),
		CustomerName:    strings.TrimSpace(payload.Customer.Name),
		CustomerEmail:   strings.TrimSpace(payload.Customer.Email),
		CustomerPhone:   strings.TrimSpace(payload.Customer.Phone),
		CustomerAddress: strings.TrimSpace(payload.Customer.Address),
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		DepositEstimate: totals.DepositEstimate,
		Total:           totals.Total,
		Status:          domain.OrderConfirmed,
	}

	items := make([]domain.OrderItem, 0, len(lines))
	reservations := make([]domain.Reservation, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ID:        common.UUIDint64(),
			ItemID:    line.ItemID,
			Name:      line.Name,
			Qty:       line.Qty,
			StartDate: line.Start.String(),
			EndDate:   line.End.String(),
			UnitPrice: line.UnitPrice,
		})
		reservations = append(reservations, domain.Reservation{
			ID:        common.UUIDint64(),
			ItemID:    line.ItemID,
			Qty:       line.Qty,
			StartDate: line.Start.String(),
			EndDate:   line.End.String(),
			Status:    domain.ReservationConfirmed,
			Remark:    "storefront checkout",
		})
	}

	orderRepo := booking.NewGormOrderRepository(GetDB(c))
	if err := orderRepo.Create(c.Request().Context(), &order, items, reservations); err != nil {
		return fail(c, http.StatusInternalServerError, "SERVER_ERROR", err.Error(), nil)
	}

	// Cart cleanup is best effort once the order is persisted.
	_ = appCtx.Carts().Clear(payload.CartID)
	appCtx.PublishOrderCreated(order.ID)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"order":  order,
		"items":  items,
		"totals": totals,
	})
}

func getOrderConfirmation(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	order, items, err := booking.NewGormOrderRepository(GetDB(c)).
		GetByNumber(c.Request().Context(), number)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	}
	return ok(c, map[string]interface{}{
		"order": order,
		"items": items,
	})
}
