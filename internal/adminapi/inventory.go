package adminapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/common"
	"github.com/shopspring/decimal"
)

type inventoryPayload struct {
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Tags         string          `json:"tags"`
	Images       string          `json:"images"`
	QtyAvailable int             `json:"qty_available"`
	PricePerDay  decimal.Decimal `json:"price_per_day"`
	DepositType  string          `json:"deposit_type"`
	DepositValue decimal.Decimal `json:"deposit_value"`
}

func registerInventoryRoutes() {
	webserver.ApiGET("/inventory", listInventory)
	webserver.ApiGET("/inventory/export", exportInventory)
	webserver.ApiGET("/inventory/:id", getInventoryItem)
	webserver.ApiPOST("/inventory", createInventoryItem)
	webserver.ApiPUT("/inventory/:id", updateInventoryItem)
	webserver.ApiDELETE("/inventory/:id", deleteInventoryItem)
}

func (p *inventoryPayload) validate() string {
	p.Slug = strings.TrimSpace(strings.ToLower(p.Slug))
	p.Name = strings.TrimSpace(p.Name)
	if p.Slug == "" {
		return "Slug is required"
	}
	if p.Name == "" {
		return "Name is required"
	}
	if p.QtyAvailable < 0 {
		return "Qty available must be >= 0"
	}
	if p.PricePerDay.IsNegative() {
		return "Price per day must be >= 0"
	}
	switch p.DepositType {
	case "", domain.DepositFlat, domain.DepositPercent:
	default:
		return "Deposit type must be 'flat' or 'percent'"
	}
	if p.DepositValue.IsNegative() {
		return "Deposit value must be >= 0"
	}
	return ""
}

func listInventory(c echo.Context) error {
	page, pageSize := parsePagination(c)
	filter := booking.InventoryFilter{
		Query:    strings.TrimSpace(c.QueryParam("q")),
		Category: strings.TrimSpace(c.QueryParam("category")),
		Sort:     strings.TrimSpace(c.QueryParam("sort")),
		Order:    strings.TrimSpace(c.QueryParam("order")),
		Page:     page,
		PageSize: pageSize,
	}

	repo := booking.NewGormInventoryRepository(GetDB(c))
	items, total, err := repo.List(c.Request().Context(), filter)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query inventory", err.Error())
	}
	return paged(c, items, total, page, pageSize)
}

func getInventoryItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID", nil)
	}
	repo := booking.NewGormInventoryRepository(GetDB(c))
	item, err := repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found", nil)
	}
	return ok(c, item)
}

func createInventoryItem(c echo.Context) error {
	var payload inventoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse item", err.Error())
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	now := time.Now()
	item := domain.InventoryItem{
		ID:           common.UUIDint64(),
		Slug:         payload.Slug,
		Name:         payload.Name,
		Description:  strings.TrimSpace(payload.Description),
		Category:     strings.TrimSpace(payload.Category),
		Tags:         strings.TrimSpace(payload.Tags),
		Images:       strings.TrimSpace(payload.Images),
		QtyAvailable: payload.QtyAvailable,
		PricePerDay:  payload.PricePerDay,
		DepositType:  payload.DepositType,
		DepositValue: payload.DepositValue,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	repo := booking.NewGormInventoryRepository(GetDB(c))
	if err := repo.Create(c.Request().Context(), &item); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create item", err.Error())
	}
	return ok(c, item)
}

func updateInventoryItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID", nil)
	}
	repo := booking.NewGormInventoryRepository(GetDB(c))
	item, err := repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Inventory item not found", nil)
	}

	var payload inventoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse item", err.Error())
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	item.Slug = payload.Slug
	item.Name = payload.Name
	item.Description = strings.TrimSpace(payload.Description)
	item.Category = strings.TrimSpace(payload.Category)
	item.Tags = strings.TrimSpace(payload.Tags)
	item.Images = strings.TrimSpace(payload.Images)
	item.QtyAvailable = payload.QtyAvailable
	item.PricePerDay = payload.PricePerDay
	item.DepositType = payload.DepositType
	item.DepositValue = payload.DepositValue
	item.UpdatedAt = time.Now()

	if err := repo.Update(c.Request().Context(), item); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update item", err.Error())
	}
	return ok(c, item)
}

func deleteInventoryItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID", nil)
	}
	repo := booking.NewGormInventoryRepository(GetDB(c))
	if err := repo.Delete(c.Request().Context(), id); err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete item", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

type inventoryCSVRow struct {
	ID           int64  `csv:"id"`
	Slug         string `csv:"slug"`
	Name         string `csv:"name"`
	Category     string `csv:"category"`
	Tags         string `csv:"tags"`
	QtyAvailable int    `csv:"qty_available"`
	PricePerDay  string `csv:"price_per_day"`
	DepositType  string `csv:"deposit_type"`
	DepositValue string `csv:"deposit_value"`
}

func exportInventory(c echo.Context) error {
	var items []domain.InventoryItem
	if err := GetDB(c).Order("category, name").Find(&items).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query inventory", err.Error())
	}

	rows := make([]inventoryCSVRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, inventoryCSVRow{
			ID:           item.ID,
			Slug:         item.Slug,
			Name:         item.Name,
			Category:     item.Category,
			Tags:         item.Tags,
			QtyAvailable: item.QtyAvailable,
			PricePerDay:  item.PricePerDay.StringFixed(2),
			DepositType:  item.DepositType,
			DepositValue: item.DepositValue.StringFixed(2),
		})
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to render CSV", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="inventory-%s.csv"`, time.Now().Format("20060102")))
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
