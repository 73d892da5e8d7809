package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/0tsuro/SparkCar/common/logger"
)

const internalErrorMessage = "Erreur interne du serveur"

// Recovery turns a panic into a 500 with the usual {ok, error} body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			slog.ErrorContext(ctx, "panic recovered",
				"panic", rec,
				"stack", logger.Truncate(string(debug.Stack()), 4096),
			)
			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": internalErrorMessage,
			})
		}()
		c.Next()
	}
}
