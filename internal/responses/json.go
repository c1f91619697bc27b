package responses

import "github.com/gin-gonic/gin"

// APIResponse is the uniform error/confirmation envelope: a human message
// plus, where safe, the underlying error detail.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a 2xx response with an optional payload.
func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Message: message,
		Data:    data,
	})
}

// Fail writes an error response and records the error on the gin context so
// error-capture middleware can pick it up.
func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
		_ = c.Error(err)
	}
	c.JSON(statusCode, resp)
}
