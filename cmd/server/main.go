package main

import (
	"log"
	"net/http"
	"os"

	_ "userapi/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"userapi/internal/auth"
	"userapi/internal/cache"
	"userapi/internal/config"
	"userapi/internal/db"
	"userapi/internal/handler"
	"userapi/internal/model"
	"userapi/internal/repository"
	"userapi/internal/router"
	"userapi/internal/service"
)

// @title User Account API
// @version 1.0
// @description User account API with registration, basic-auth login, and short-lived signed token issuance.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a token from GET /api/token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping user table...")
		if err := gormDB.Migrator().DropTable(&model.User{}); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	tokenService := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL)

	userService := service.NewUserService(userRepo, cacheClient)
	authService := service.NewAuthService(userService, tokenService)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService, userService)

	router.Register(e, cfg, userHandler, authHandler, authService)

	if cfg.SecretKey == "change-me" {
		log.Println("Warning: SECRET_KEY not set, using insecure default")
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
