package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger(zap.NewNop()), Recovery(zap.NewNop()))
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestTraceIDGenerated(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(TraceIDHeader)
	if id == "" || w.Body.String() != id {
		t.Fatalf("expected generated trace id in header and context, got %q / %q", id, w.Body.String())
	}
}

func TestTraceIDPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(TraceIDHeader, "abc-123")
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)

	if got := w.Header().Get(TraceIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming trace id to be kept, got %q", got)
	}
}

func TestRecoveryRespondsWithEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Header().Get(TraceIDHeader) == "" {
		t.Fatalf("trace id should survive a panic")
	}
}
