// Package response writes the API's JSON envelope:
// {"success": true, "data": ...} or {"success": false, "error": {...}}.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsinventory/internal/domain"
	"sportsinventory/internal/pkg/logger"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// errorStatus orders the taxonomy; the first match wins, so a sale error
// wrapping both stock sentinels reports as insufficient stock.
var errorStatus = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrInvalidArgument, http.StatusBadRequest, "INVALID_ARGUMENT"},
	{domain.ErrConstraintViolation, http.StatusBadRequest, "CONSTRAINT_VIOLATION"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrReferentialIntegrity, http.StatusConflict, "REFERENTIAL_INTEGRITY"},
	{domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
	{domain.ErrInvariantViolation, http.StatusConflict, "INVARIANT_VIOLATION"},
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, Envelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
	})
}

// FromError writes the error envelope matching err's place in the domain
// taxonomy. Unclassified errors become a 500 without leaking details.
func FromError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.target) {
			Error(c, e.status, e.code, err.Error())
			return
		}
	}

	_ = c.Error(err)
	logger.FromContext(c.Request.Context()).WithError(err).Error("request failed")
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

// ValidationError reports a request body that failed to bind.
func ValidationError(c *gin.Context, err error) {
	ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
}
