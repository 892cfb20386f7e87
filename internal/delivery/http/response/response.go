package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Success sends {"ok":true}
func Success(c *gin.Context, code int) {
	c.JSON(code, Response{OK: true})
}

// Error sends {"ok":false,"error":message}
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{OK: false, Error: message})
}

// FieldErrors sends {"ok":false,"errors":{...}}
func FieldErrors(c *gin.Context, code int, fields map[string]string) {
	c.JSON(code, Response{OK: false, Errors: fields})
}
