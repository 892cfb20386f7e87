package middleware

import (
	"enquiry-relay/internal/delivery/http/response"
	"enquiry-relay/pkg/apperror"
	"enquiry-relay/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const unexpectedError = "Unexpected server error."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients.
			logger.Log.Error("Unhandled error",
				"error", err,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
			response.Error(c, http.StatusInternalServerError, unexpectedError)
			return
		}

		if appErr.Err != nil {
			level := logger.Log.Warn
			if appErr.Code >= http.StatusInternalServerError {
				level = logger.Log.Error
			}
			level(appErr.Message,
				"status", appErr.Code,
				"error", appErr.Err,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
		}

		if len(appErr.Fields) > 0 {
			response.FieldErrors(c, appErr.Code, appErr.Fields)
			return
		}
		response.Error(c, appErr.Code, appErr.Message)
	}
}

// Recovery turns panics into the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Recovered from panic",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
		)
		response.Error(c, http.StatusInternalServerError, unexpectedError)
		c.Abort()
	})
}
