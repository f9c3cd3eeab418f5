package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
)

func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiGET("/orders/export", exportOrders)
	webserver.ApiGET("/orders/:number", getOrder)
}

func listOrders(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := strings.TrimSpace(c.QueryParam("q"))

	repo := booking.NewGormOrderRepository(GetDB(c))
	orders, total, err := repo.List(c.Request().Context(), query, page, pageSize)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query orders", err.Error())
	}
	return paged(c, orders, total, page, pageSize)
}

func getOrder(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	repo := booking.NewGormOrderRepository(GetDB(c))
	order, items, err := repo.GetByNumber(c.Request().Context(), number)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
	}
	return ok(c, map[string]interface{}{"order": order, "items": items})
}

type orderCSVRow struct {
	Number          string `csv:"number"`
	Customer        string `csv:"customer"`
	Email           string `csv:"email"`
	Subtotal        string `csv:"subtotal"`
	Tax             string `csv:"tax"`
	DepositEstimate string `csv:"deposit_estimate"`
	Total           string `csv:"total"`
	Status          string `csv:"status"`
	CreatedAt       string `csv:"created_at"`
}

func exportOrders(c echo.Context) error {
	var orders []domain.Order
	if err := GetDB(c).Order("created_at DESC").Find(&orders).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query orders", err.Error())
	}

	rows := make([]orderCSVRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderCSVRow{
			Number:          order.Number,
			Customer:        order.CustomerName,
			Email:           order.CustomerEmail,
			Subtotal:        order.Subtotal.StringFixed(2),
			Tax:             order.Tax.StringFixed(2),
			DepositEstimate: order.DepositEstimate.StringFixed(2),
			Total:           order.Total.StringFixed(2),
			Status:          order.Status,
			CreatedAt:       order.CreatedAt.Format(time.RFC3339),
		})
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to render CSV", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="orders-%s.csv"`, time.Now().Format("20060102")))
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
