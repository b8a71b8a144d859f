package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"lightbnb/src/app/http/response"
	"lightbnb/src/app/middleware"
)

// pathID parses a positive integer path parameter. On failure it writes a
// 400 response and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Invalid(c, name, "must be a positive integer", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

// fail records err on the context for the access log and writes the mapped response.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	response.FromDomainError(c, err, middleware.GetRequestID(c))
}
