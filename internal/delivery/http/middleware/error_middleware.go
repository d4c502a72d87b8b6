package middleware

import (
	"errors"
	"net/http"

	"ggenius-website/internal/delivery/http/response"
	"ggenius-website/pkg/apperror"
	"ggenius-website/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// AppErrors keep their code and message. Anything else becomes a generic 500;
// the raw error text is only exposed when debug is on. The cause of a 5xx
// AppError is logged but never rendered, debug or not.
func ErrorHandler(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.ErrorContext(c.Request.Context(), "Request failed",
					"path", c.FullPath(), "error", errors.Unwrap(appErr))
			}
			var detail interface{} = appErr.Details
			if detail == nil && debug && appErr.Err != nil && appErr.Code < http.StatusInternalServerError {
				detail = appErr.Err.Error()
			}
			response.Error(c, appErr.Code, appErr.Message, detail)
			return
		}

		// SECURITY: Never expose internal error details to clients outside debug mode.
		logger.Log.ErrorContext(c.Request.Context(), "Internal Server Error", "path", c.FullPath(), "error", err)
		var detail interface{}
		if debug {
			detail = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", detail)
	}
}
