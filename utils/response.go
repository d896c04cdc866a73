package utils

import (
	"github.com/gin-gonic/gin"
)

// envelope is the uniform body of every auction API response. Data carries
// the aggregate (auction, lot, bid or winner view); Error carries the
// underlying failure text alongside the caller-facing message.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSONResponse writes a success envelope.
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{Status: status, Message: message, Data: data})
}

// JSONError writes a failure envelope.
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, envelope{Status: status, Message: message, Error: err.Error()})
}
