package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newServer(limit int) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiter(limit, time.Minute))
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func hit(e *echo.Echo) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	e := newServer(3)

	for i := 0; i < 3; i++ {
		if code := hit(e); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	e := newServer(2)

	hit(e)
	hit(e)
	if code := hit(e); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 once over the limit, got %d", code)
	}
}

func TestRateLimiter_KeysByClientIP(t *testing.T) {
	e := newServer(1)

	hit(e)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("a different client must have its own bucket, got %d", rec.Code)
	}
}

func TestRequestID_SetsHeader(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("expected X-Request-ID header to be set")
	}
}
