package app

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Kizito57/leave-management-system/internal/auth"
	"github.com/Kizito57/leave-management-system/internal/leave"
	"github.com/Kizito57/leave-management-system/internal/leavetype"
	"github.com/Kizito57/leave-management-system/internal/middleware"
	"github.com/Kizito57/leave-management-system/internal/shared/connection"
)

// Config is the explicit application context: everything the modules need is
// loaded here once and injected, no ambient globals.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	JWTSecret  string
	Port       string
	CORSOrigin string
	AppEnv     string
}

func LoadConfig() Config {
	cfg := Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		DBSSLMode:  os.Getenv("DB_SSLMODE"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
		CORSOrigin: os.Getenv("CORS_ORIGIN"),
		AppEnv:     os.Getenv("APP_ENV"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:5173"
	}
	return cfg
}

func BuildApp(router *gin.Engine, cfg Config) error {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	// Create tables if they do not exist.
	if err := db.AutoMigrate(
		&auth.User{},
		&auth.RevokedToken{},
		&leavetype.LeaveType{},
		&leave.LeaveRequest{},
	); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Cross-origin requests are permitted from exactly one configured origin,
	// with credentials.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestID())

	return registerModules(router, sqlDB, db, cfg)
}
