package middleware

import (
	"log/slog"
	"net/http"

	"clinic-scheduler/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the response for handlers that recorded an error
// without writing a body. Public errors carry their prepared response;
// any other error is classified by its category.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypePublic) {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := httperr.StatusOf(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = http.StatusText(status)
		if status < http.StatusInternalServerError {
			resp.Error.Message = last.Err.Error()
		}
		c.JSON(status, resp)
	}
}

// CustomRecovery turns a panic into a 500 with the standard error body.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Recovered from panic",
					"panic", r,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
