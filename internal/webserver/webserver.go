package webserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/json-iterator/go"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rentalworks/partyrent/internal/app"
	"github.com/rentalworks/partyrent/pkg/metrics"
	"go.uber.org/zap"
)

const appCtxKey = "partyrent_appctx"

var server *WebServer

// WebServer hosts the public storefront API and the JWT-guarded admin API on
// one echo instance.
type WebServer struct {
	root   *echo.Echo
	api    *echo.Group
	store  *echo.Group
	appCtx app.AppContext
}

// jsonSerializer adapts json-iterator to echo's JSONSerializer interface.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsoniter.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := jsoniter.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func Init(appCtx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appCtxKey, appCtx)
			metrics.CounterInc(metrics.MetricHTTPRequests)
			return next(c)
		}
	})
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Debug("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status))
			return nil
		},
	}))

	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(appCtx.Config().Web.Secret),
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/api/login")
		},
	}))

	store := e.Group("/store")

	server = &WebServer{root: e, api: api, store: store, appCtx: appCtx}
	return server
}

// Listen starts the http listener and blocks.
func (s *WebServer) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.appCtx.Config().Web.Host, s.appCtx.Config().Web.Port)
	zap.S().Infof("web server listening on %s", addr)
	return s.root.Start(addr)
}

// Shutdown stops the listener.
func (s *WebServer) Shutdown() {
	_ = s.root.Close()
}

// GetAppCtx returns the application context injected per request.
func GetAppCtx(c echo.Context) app.AppContext {
	return c.Get(appCtxKey).(app.AppContext)
}

// Admin API route registration helpers.

func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

// Storefront route registration helpers.

func StoreGET(path string, h echo.HandlerFunc) {
	server.store.GET(path, h)
}

func StorePOST(path string, h echo.HandlerFunc) {
	server.store.POST(path, h)
}

func StorePATCH(path string, h echo.HandlerFunc) {
	server.store.PATCH(path, h)
}

func StoreDELETE(path string, h echo.HandlerFunc) {
	server.store.DELETE(path, h)
}
