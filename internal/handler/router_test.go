//go:build unit

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAddRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	reply := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) { c.String(http.StatusOK, name) }
	}
	addRoutes(engine.Group("/api"), []route{
		{Method: http.MethodGet, Path: "/units", Handler: reply("list")},
		{Method: http.MethodPost, Path: "/units", Handler: reply("create")},
		{Method: http.MethodPut, Path: "/units/:id", Handler: reply("update")},
		{Method: http.MethodPatch, Path: "/units/:id", Handler: reply("patch")},
		{Method: http.MethodDelete, Path: "/units/:id", Handler: reply("delete")},
		{Method: http.MethodOptions, Path: "/any", Handler: reply("any")},
	})

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/api/units", "list"},
		{http.MethodPost, "/api/units", "create"},
		{http.MethodPut, "/api/units/h1", "update"},
		{http.MethodPatch, "/api/units/h1", "patch"},
		{http.MethodDelete, "/api/units/h1", "delete"},
		{http.MethodHead, "/api/any", "any"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			if tt.method != http.MethodHead {
				assert.Equal(t, tt.want, w.Body.String())
			}
		})
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/units/h1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
