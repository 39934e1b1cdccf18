package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estoque/internal/pkg/logger"
	"estoque/internal/pkg/middleware"
)

func TestRequestLogger_LogsStatusAndTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("info", &buf)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := middleware.TraceID(middleware.RequestLogger(log)(next))

	req := httptest.NewRequest(http.MethodGet, "/product/Nada", nil)
	req.Header.Set("X-Trace-ID", "t-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "t-1", entry["trace_id"])
	assert.Equal(t, "GET", entry["method"])
}
