package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// StaticHandler serves the front-end assets for every GET that did not
// match an API route. "/" maps to index.html. Paths resolving outside
// the asset root are rejected; static errors are plain text, not JSON.
func StaticHandler(root string) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqPath := c.Request().URL.Path
		if reqPath == "/" {
			reqPath = "/index.html"
		}

		rootAbs, err := filepath.Abs(root)
		if err != nil {
			return err
		}

		fullPath := filepath.Join(rootAbs, strings.TrimPrefix(reqPath, "/"))
		if fullPath != rootAbs && !strings.HasPrefix(fullPath, rootAbs+string(filepath.Separator)) {
			return c.String(http.StatusForbidden, "Forbidden")
		}

		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			return c.String(http.StatusNotFound, "Not Found")
		}

		data, err := os.ReadFile(fullPath)
		if err != nil {
			return c.String(http.StatusNotFound, "Not Found")
		}

		return c.Blob(http.StatusOK, contentTypeFor(fullPath), data)
	}
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}
