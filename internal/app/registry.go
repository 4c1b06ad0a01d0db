package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kizito57/leave-management-system/internal/auth"
	"github.com/Kizito57/leave-management-system/internal/leave"
	"github.com/Kizito57/leave-management-system/internal/leavetype"
	"github.com/Kizito57/leave-management-system/internal/middleware"
	"github.com/Kizito57/leave-management-system/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	cfg Config,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	revocationLedger := auth.NewLedger(gormDB)
	userRepo := user.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)

	// --- Services ---
	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret)
	authService := auth.NewService(authRepo, revocationLedger, tokenIssuer)
	userService := user.NewService(db, userRepo)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo)
	leaveService := leave.NewService(db, leaveRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	leaveHandler := leave.NewHandler(leaveService)

	// Every protected route shares one access gate.
	authenticate := middleware.Authenticate(authService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(router, api, authHandler, authenticate)
		user.RegisterRoutes(api, userHandler, authenticate)
		leavetype.RegisterRoutes(api, leaveTypeHandler, authenticate)
		leave.RegisterRoutes(api, leaveHandler, authenticate)
	}

	return nil
}
