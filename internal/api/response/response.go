package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the common response envelope. Every failure uses it; successes
// whose endpoint defines no richer shape use it too.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK writes {"success":true}.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Body{Success: true})
}

// OKMessage writes {"success":true,"message":...}.
func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message})
}

// Error writes {"success":false,"message":...} with the given status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Body{Success: false, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalError writes the fixed opaque 500 body. The real error goes to the
// log, never to the client.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Something went wrong")
}
