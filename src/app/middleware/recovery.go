package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lightbnb/src/app/http/response"
)

// Recovery turns a handler panic into a logged stack trace and a 500
// INTERNAL_ERROR envelope. Install it first so it wraps every other handler.
func Recovery(log *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				log.Error().
					Str("request_id", requestID).
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Str("method", c.Request.Method).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				response.InternalError(c, requestID)
			}
		}()

		c.Next()
	}
}
