package response

import (
	"github.com/gin-gonic/gin"
)

// Success writes the payload as-is. Handlers own their response shape
// (e.g. login returns {access_token, role}).
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Message is the plain {"msg": ...} body used by write operations.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	body := gin.H{
		"code":    errorCode,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
