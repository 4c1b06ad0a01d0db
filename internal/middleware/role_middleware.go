package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Kizito57/leave-management-system/internal/shared/apperror"
	"github.com/Kizito57/leave-management-system/internal/shared/response"
)

// RequireRole gates an operation on exactly one role, by exact string
// equality, plus the approval flag. There is no hierarchy: Admin does not
// satisfy an Employee-gated route.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("user_role")
		if !exists {
			errObj := apperror.ErrUnauthorized
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		approved := c.GetBool("user_approved")
		if userRole != role || !approved {
			errObj := apperror.ErrForbidden
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
