package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
)

func registerSettingsRoutes() {
	webserver.ApiGET("/settings", listSettings)
	webserver.ApiPUT("/settings", updateSettings)
}

func listSettings(c echo.Context) error {
	var rows []domain.SysConfig
	if err := GetDB(c).Order("sort, type, name").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query settings", err.Error())
	}
	return ok(c, rows)
}

// updateSettings takes a flat map of "category.name" -> value.
func updateSettings(c echo.Context) error {
	var payload map[string]string
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse settings", err.Error())
	}

	settings := GetApp(c).Settings()
	updated := 0
	for key, value := range payload {
		parts := strings.SplitN(key, ".", 2)
		if len(parts) != 2 {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Setting keys must be 'category.name'", key)
		}
		if err := settings.Set(parts[0], parts[1], value); err != nil {
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save setting", key)
		}
		updated++
	}
	return ok(c, map[string]interface{}{"updated": updated})
}
