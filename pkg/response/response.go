package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/simak-api/pkg/errors"
)

// Envelope represents the common success contract.
type Envelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta"`
}

// ErrorEnvelope represents the common failure contract.
type ErrorEnvelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Error   interface{} `json:"error"`
}

// JSON sends a success response. Meta defaults to an empty object so the key is always present.
func JSON(c *gin.Context, status int, message string, data interface{}, meta interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	if meta == nil {
		meta = map[string]interface{}{}
	}
	if data == nil {
		data = []interface{}{}
	}
	c.JSON(status, Envelope{Success: true, Code: status, Message: message, Data: data, Meta: meta})
}

// OK responds with HTTP 200.
func OK(c *gin.Context, message string, data interface{}, meta interface{}) {
	JSON(c, http.StatusOK, message, data, meta)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorEnvelope{
		Success: false,
		Code:    appErr.Status,
		Message: appErr.Message,
		Error:   detail(appErr),
	})
}

// Abort writes the error envelope and stops the middleware chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func detail(err *appErrors.Error) interface{} {
	if err.Details != nil {
		return err.Details
	}
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}
