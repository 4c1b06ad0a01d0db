package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the public auth endpoints. Login lives at the root,
// everything else under /api; authenticate guards logout only.
func RegisterRoutes(
	root *gin.Engine,
	api *gin.RouterGroup,
	handler *Handler,
	authenticate gin.HandlerFunc,
) {
	root.POST("/login", handler.Login)

	api.POST("/register", handler.Register)
	api.POST("/refresh", handler.Refresh)
	api.POST("/logout", authenticate, handler.Logout)
}
