package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/graphplay/ctxlog"
)

// Recovery turns handler panics into a 500 envelope.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered", "panic", err, "stack", string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, Response[any]{
					Code:    http.StatusInternalServerError,
					Message: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}

// Logger attaches a request-scoped logger to the request context and logs
// each request once it completes.
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.With("method", c.Request.Method, "path", c.FullPath())
		c.Request = c.Request.WithContext(ctxlog.WithLogger(c.Request.Context(), reqLog))

		c.Next()

		reqLog.Debug("request",
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"remote", c.ClientIP(),
		)
	}
}
