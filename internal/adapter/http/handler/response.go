package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope every analysis endpoint answers with. Exactly one
// of Data or Error is set; Meta always carries the request correlation fields.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *MetaInfo   `json:"meta"`
}

// ErrorInfo pairs a machine-readable code with a human-readable message
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MetaInfo correlates a response with the request that produced it
type MetaInfo struct {
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data, Meta: newMeta(c)})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
		Meta:    newMeta(c),
	})
}

// newMeta reads the request id assigned by the RequestID middleware, minting
// one for requests that bypassed the middleware chain
func newMeta(c *gin.Context) *MetaInfo {
	id := c.GetString("request_id")
	if id == "" {
		id = uuid.NewString()
	}
	return &MetaInfo{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: id,
	}
}
