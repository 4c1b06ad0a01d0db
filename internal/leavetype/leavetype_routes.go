package leavetype

import (
	"github.com/gin-gonic/gin"

	"github.com/Kizito57/leave-management-system/internal/auth"
	"github.com/Kizito57/leave-management-system/internal/middleware"
)

// RegisterRoutes exposes the catalogue read publicly; every write is
// Admin-gated.
func RegisterRoutes(
	api *gin.RouterGroup,
	handler *Handler,
	authenticate gin.HandlerFunc,
) {
	api.GET("/leave-types", handler.GetAll)

	admin := api.Group("/admin")
	admin.Use(authenticate, middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/leave-types", handler.Create)
		admin.PUT("/leave-types/:id", handler.Update)
		admin.DELETE("/leave-types/:id", handler.Delete)
	}
}
