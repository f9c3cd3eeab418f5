package storeapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/app"
	"github.com/rentalworks/partyrent/internal/webserver"
	"gorm.io/gorm"
)

// Init registers the public storefront routes. Must run after webserver.Init.
func Init() {
	registerCatalogRoutes()
	registerAvailabilityRoutes()
	registerCartRoutes()
	registerCheckoutRoutes()
}

func GetApp(c echo.Context) app.AppContext {
	return webserver.GetAppCtx(c)
}

func GetDB(c echo.Context) *gorm.DB {
	return webserver.GetAppCtx(c).DB()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"error":   code,
		"message": message,
		"detail":  detail,
	})
}
