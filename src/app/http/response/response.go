// Package response writes the JSON envelopes of the listing API:
// {"data": ...} on success, {"data": [...], "count": n} for listings and
// {"error": {...}} on failure.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lightbnb/src/core/domain"
)

// Error codes.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL_ERROR"
)

type Success struct {
	Data any `json:"data"`
}

type List struct {
	Data  any `json:"data"`
	Count int `json:"count"`
}

type Error struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

func OKList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, List{Data: data, Count: count})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Success{Data: data})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, detail ErrorDetail) {
	c.AbortWithStatusJSON(status, Error{Error: detail})
}

// BadRequest reports a request that could not be bound.
func BadRequest(c *gin.Context, message, requestID string) {
	Abort(c, http.StatusBadRequest, ErrorDetail{Code: CodeBadRequest, Message: message, RequestID: requestID})
}

// Invalid reports a single rejected field.
func Invalid(c *gin.Context, field, message, requestID string) {
	Abort(c, http.StatusBadRequest, ErrorDetail{Code: CodeValidation, Message: message, Field: field, RequestID: requestID})
}

// InternalError hides the cause; it is in the logs under the request id.
func InternalError(c *gin.Context, requestID string) {
	Abort(c, http.StatusInternalServerError, ErrorDetail{
		Code:      CodeInternal,
		Message:   "An unexpected error occurred",
		RequestID: requestID,
	})
}

// FromDomainError maps not-found to 404, validation to 400 and conflict to
// 409. Query failures and anything unrecognised become a 500.
func FromDomainError(c *gin.Context, err error, requestID string) {
	switch {
	case domain.IsNotFound(err):
		Abort(c, http.StatusNotFound, ErrorDetail{Code: CodeNotFound, Message: err.Error(), RequestID: requestID})
	case domain.IsValidationError(err):
		var de *domain.DomainError
		if errors.As(err, &de) {
			Invalid(c, de.Field, de.Message, requestID)
			return
		}
		Invalid(c, "", err.Error(), requestID)
	case domain.IsConflict(err):
		Abort(c, http.StatusConflict, ErrorDetail{Code: CodeConflict, Message: err.Error(), RequestID: requestID})
	default:
		InternalError(c, requestID)
	}
}
