//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// ActorHeader carries the id of the user acting on the request.
const ActorHeader = "X-User-ID"

// executes HTTP request with an optional acting user
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, actorID string) *httptest.ResponseRecorder {
	t.Helper()

	var raw []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		raw = jsonBody
	}
	return PerformRawRequest(t, router, method, path, raw, actorID)
}

// sends body verbatim, for payloads whose key order matters
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path string, body []byte, actorID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if actorID != "" {
		req.Header.Set(ActorHeader, actorID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
