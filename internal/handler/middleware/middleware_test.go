//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"parkstay/internal/handler/httperr"
	"parkstay/internal/handler/middleware"
	"parkstay/internal/metrics"
	"parkstay/tests/common/httptest"

	"github.com/gin-gonic/gin"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery(), middleware.ActorMiddleware(), middleware.MetricsMiddleware(), middleware.ErrorHandler())
	return engine
}

func TestActorMiddleware(t *testing.T) {
	engine := newEngine()
	engine.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetActorID(c))
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/whoami", nil, " u-42 ")
	assert.Equal(t, "u-42", rec.Body.String())

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/whoami", nil, "")
	assert.Equal(t, middleware.UnknownActor, rec.Body.String())
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine()
	engine.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusTeapot, errors.New("boom"), "short and stout", map[string]string{"k": "v"})
	})
	engine.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/fail", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTeapot, "short and stout")
	var detail map[string]string
	httptest.DecodeErrorDetail(t, rec, &detail)
	assert.Equal(t, "v", detail["k"])

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestMetricsMiddleware(t *testing.T) {
	engine := newEngine()
	engine.GET("/items/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	counter := metrics.RequestsTotal.WithLabelValues("/items/:id", http.MethodGet, "200")
	before := promtestutil.ToFloat64(counter)

	httptest.PerformRequest(t, engine, http.MethodGet, "/items/1", nil, "")
	httptest.PerformRequest(t, engine, http.MethodGet, "/items/2", nil, "")

	assert.Equal(t, before+2, promtestutil.ToFloat64(counter))

	unmatched := metrics.RequestsTotal.WithLabelValues("unmatched", http.MethodGet, "404")
	before = promtestutil.ToFloat64(unmatched)
	httptest.PerformRequest(t, engine, http.MethodGet, "/nowhere", nil, "")
	assert.Equal(t, before+1, promtestutil.ToFloat64(unmatched))
}
