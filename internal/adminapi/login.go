package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/common"
	"go.uber.org/zap"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func registerLoginRoutes() {
	webserver.ApiPOST("/login", login)
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Username and password are required", nil)
	}

	var operator domain.SysOpr
	if err := GetDB(c).Where("username = ? AND status = ?", payload.Username, common.ENABLED).
		First(&operator).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "INVALID_LOGIN", "Invalid username or password", nil)
	}
	if !common.CheckPassword(operator.Password, payload.Password) {
		return fail(c, http.StatusUnauthorized, "INVALID_LOGIN", "Invalid username or password", nil)
	}

	claims := jwt.MapClaims{
		"usr": operator.Username,
		"lvl": operator.Level,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(GetApp(c).Config().Web.Secret))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "TOKEN_ERROR", "Failed to issue token", err.Error())
	}

	GetDB(c).Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Update("last_login", time.Now())
	zap.L().Info("operator logged in", zap.String("username", operator.Username))

	return ok(c, map[string]interface{}{
		"token":    signed,
		"username": operator.Username,
		"level":    operator.Level,
	})
}
