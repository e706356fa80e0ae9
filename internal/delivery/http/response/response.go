package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the fixed error envelope. The HTTP status carries the
// taxonomy; errorCode mirrors it as a stable machine-readable string.
type ErrorBody struct {
	Error     string   `json:"error"`
	ErrorCode string   `json:"errorCode"`
	Errors    []string `json:"errors,omitempty"`
}

// JSON sends a success payload as-is.
func JSON(c *gin.Context, code int, payload interface{}) {
	c.JSON(code, payload)
}

// Error sends the error envelope.
func Error(c *gin.Context, status int, errorCode, message string, errs []string) {
	c.JSON(status, ErrorBody{
		Error:     message,
		ErrorCode: errorCode,
		Errors:    errs,
	})
}
