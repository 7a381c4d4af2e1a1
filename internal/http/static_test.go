package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
)

func setupStatic(t *testing.T) *echo.Echo {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"index.html": "<html><body>Tasks</body></html>",
		"app.js":     "console.log('tasks');",
		"style.css":  "body {}",
		"notes.txt":  "plain notes",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
	}

	e := echo.New()
	e.GET("/*", StaticHandler(dir))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStaticHandler_ContentTypes(t *testing.T) {
	e := setupStatic(t)

	tests := []struct {
		path        string
		contentType string
	}{
		{"/", "text/html; charset=utf-8"},
		{"/index.html", "text/html; charset=utf-8"},
		{"/style.css", "text/css; charset=utf-8"},
		{"/app.js", "application/javascript; charset=utf-8"},
		{"/notes.txt", "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		rec := get(e, tt.path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", tt.path, rec.Code)
			continue
		}
		if got := rec.Header().Get(echo.HeaderContentType); got != tt.contentType {
			t.Errorf("%s: expected content type %q, got %q", tt.path, tt.contentType, got)
		}
	}
}

func TestStaticHandler_IndexForRoot(t *testing.T) {
	e := setupStatic(t)

	rec := get(e, "/")
	if rec.Body.String() != "<html><body>Tasks</body></html>" {
		t.Errorf("expected index.html body, got %q", rec.Body.String())
	}
}

func TestStaticHandler_MissingFile(t *testing.T) {
	e := setupStatic(t)

	rec := get(e, "/missing.html")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "Not Found" {
		t.Errorf("expected plain Not Found body, got %q", rec.Body.String())
	}
}

func TestStaticHandler_TraversalRejected(t *testing.T) {
	e := setupStatic(t)

	rec := get(e, "/../outside.txt")
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if rec.Body.String() != "Forbidden" {
		t.Errorf("expected plain Forbidden body, got %q", rec.Body.String())
	}
}
