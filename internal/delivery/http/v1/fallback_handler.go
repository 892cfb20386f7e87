package v1

import (
	"enquiry-relay/pkg/apperror"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// fallbackHandler answers every request no route matched: page loads get the
// entry page, everything under /api/ gets a JSON 404.
func fallbackHandler(indexHTML []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		isPageLoad := method == http.MethodGet || method == http.MethodHead
		if !isPageLoad || isAPIPath(c.Request.URL.Path) || indexHTML == nil {
			c.Error(apperror.NotFound("Not found"))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
	}
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// loadIndex reads index.html from the asset filesystem; a missing page
// disables the page fallback rather than failing startup.
func loadIndex(assets fs.FS) []byte {
	if assets == nil {
		return nil
	}
	b, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		return nil
	}
	return b
}
