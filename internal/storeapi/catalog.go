package storeapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/booking"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/common"
)

func registerCatalogRoutes() {
	webserver.StoreGET("/items", listCatalog)
	webserver.StoreGET("/categories", listCategories)
	webserver.StoreGET("/items/:slug", getCatalogItem)
}

type catalogItem struct {
	domain.InventoryItem
	TagList      []string `json:"tag_list"`
	ImageList    []string `json:"image_list"`
	DisplayPrice string   `json:"display_price"`
}

func toCatalogItem(item domain.InventoryItem) catalogItem {
	return catalogItem{
		InventoryItem: item,
		TagList:       item.TagList(),
		ImageList:     item.ImageList(),
		DisplayPrice:  common.FormatAmount(item.PricePerDay),
	}
}

func listCatalog(c echo.Context) error {
	page := 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize := 50
	if ps, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && ps > 0 && ps <= 200 {
		pageSize = ps
	}

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
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query catalog", nil)
	}

	out := make([]catalogItem, 0, len(items))
	for _, item := range items {
		out = append(out, toCatalogItem(item))
	}
	return ok(c, map[string]interface{}{
		"items": out,
		"total": total,
		"page":  page,
	})
}

func listCategories(c echo.Context) error {
	repo := booking.NewGormInventoryRepository(GetDB(c))
	categories, err := repo.Categories(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query categories", nil)
	}
	return ok(c, categories)
}

func getCatalogItem(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	repo := booking.NewGormInventoryRepository(GetDB(c))
	item, err := repo.GetBySlug(c.Request().Context(), slug)
	if err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Item not found", nil)
	}

	out := toCatalogItem(*item)

	// Resolved one-day single-unit deposit for display next to the price.
	policy := booking.PolicyForItem(item)
	deposit := booking.ResolveDeposit(policy, item.PricePerDay)

	return ok(c, map[string]interface{}{
		"item":            out,
		"deposit_per_day": deposit.Round(2),
		"deposit_policy":  policy,
	})
}
