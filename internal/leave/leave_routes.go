package leave

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
	employee := api.Group("/employee")
	employee.Use(authenticate)
	{
		employee.POST("/apply-leave", middleware.RequireRole(auth.RoleEmployee), handler.Apply)
		// History is open to any authenticated role; approval is checked in
		// the service so the caller gets a 403, not a role error.
		employee.GET("/leave-history", handler.History)
	}

	admin := api.Group("/admin")
	admin.Use(authenticate, middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/review-leave", handler.Review)
		admin.GET("/leave-requests", handler.GetAll)
		admin.GET("/leave-stats", handler.Stats)
	}
}
