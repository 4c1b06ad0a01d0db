package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Kizito57/leave-management-system/internal/auth"
	autherrors "github.com/Kizito57/leave-management-system/internal/auth/errors"
	"github.com/Kizito57/leave-management-system/internal/shared/apperror"
	"github.com/Kizito57/leave-management-system/internal/shared/contextutil"
	"github.com/Kizito57/leave-management-system/internal/shared/response"
)

// Authenticator is the access-gate core: token decode, revocation check,
// credential-store load. auth.Service satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.User, *auth.TokenClaims, error)
}

// Authenticate extracts the bearer token and resolves the caller. On success
// the user identity, role, approval flag and jti are stored in the gin
// context for downstream guards and handlers.
func Authenticate(gate Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			errObj := autherrors.ErrMissingToken
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		user, claims, err := gate.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
		c.Set("user_role", user.Role)
		c.Set("user_approved", user.IsApproved)
		c.Set("jti", claims.ID)

		ctx := contextutil.WithUserEmail(c.Request.Context(), user.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
