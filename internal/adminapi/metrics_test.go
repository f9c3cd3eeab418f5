package adminapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func metricRequest(t *testing.T, name, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/metrics/"+name+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues(name)
	if err := queryMetric(c); err != nil {
		t.Fatalf("queryMetric returned error: %v", err)
	}
	return rec
}

func TestQueryMetricUnknownName(t *testing.T) {
	rec := metricRequest(t, "cpu_load", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestQueryMetricEmptyStore(t *testing.T) {
	rec := metricRequest(t, "orders_created", "?hours=48")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"points":[]`) {
		t.Errorf("body = %s, want empty points list", rec.Body.String())
	}
}
