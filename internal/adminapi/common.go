package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/app"
	"github.com/rentalworks/partyrent/internal/webserver"
	"gorm.io/gorm"
)

// Init registers all admin routes. Must run after webserver.Init.
func Init() {
	registerLoginRoutes()
	registerInventoryRoutes()
	registerReservationRoutes()
	registerOrderRoutes()
	registerSettingsRoutes()
	registerSchedulerRoutes()
	registerMetricsRoutes()
}

// GetApp returns the application context for the request.
func GetApp(c echo.Context) app.AppContext {
	return webserver.GetAppCtx(c)
}

// GetDB returns the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return webserver.GetAppCtx(c).DB()
}

type apiEnvelope struct {
	Code int         `json:"code"`
	Data interface{} `json:"data,omitempty"`
}

type apiError struct {
	Code    int         `json:"code"`
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

type pagedData struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, apiEnvelope{Code: 0, Data: data})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, apiError{Code: status, Error: code, Message: message, Detail: detail})
}

func paged(c echo.Context, items interface{}, total int64, page, pageSize int) error {
	return ok(c, pagedData{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// parsePagination accepts both perPage (front-end) and page_size parameters.
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 20
	for _, name := range []string{"perPage", "page_size"} {
		if ps, err := strconv.Atoi(c.QueryParam(name)); err == nil && ps > 0 && ps <= 500 {
			pageSize = ps
			break
		}
	}
	return page, pageSize
}
