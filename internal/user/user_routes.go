package user

import (
	"github.com/gin-gonic/gin"

	"github.com/Kizito57/leave-management-system/internal/auth"
	"github.com/Kizito57/leave-management-system/internal/middleware"
)

func RegisterRoutes(
	api *gin.RouterGroup,
	handler *Handler,
	authenticate gin.HandlerFunc,
) {
	admin := api.Group("/admin")
	admin.Use(authenticate, middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/approve-user", handler.Review)
		admin.GET("/pending-users", handler.Pending)
	}
}
