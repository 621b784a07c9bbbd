package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the standardized API response shape. Successful responses carry
// Data; failures carry Message (and optionally field-level details).
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success sends a successful JSON response with the given status code and data.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
	})
}

// Fail sends an error response using the canonical message for the code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: GetMessage(code),
	})
}

// FailWithMessage sends an error response with an explicit message, used where
// the caller has row- or field-specific detail safe to expose.
func FailWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
	})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: GetMessage(code),
		Fields:  fields,
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Success: false,
		Message: GetMessage(code),
	})
}
