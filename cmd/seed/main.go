package main

import (
	"context"
	"errors"
	"log"

	"userapi/internal/cache"
	"userapi/internal/config"
	"userapi/internal/db"
	apperrors "userapi/internal/errors"
	"userapi/internal/model"
	"userapi/internal/repository"
	"userapi/internal/service"
)

// demoUsers are the accounts created by the seed script. Existing usernames
// are left untouched.
var demoUsers = []struct {
	Username string
	Password string
	Email    string
}{
	{Username: "alice", Password: "secret", Email: "alice@example.com"},
	{Username: "bob", Password: "hunter2", Email: "bob@example.com"},
	{Username: "carol", Password: "correcthorse", Email: "carol@example.com"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	userService := service.NewUserService(repository.NewUserRepository(gormDB), cacheClient)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, u := range demoUsers {
		if _, err := userService.Register(ctx, u.Username, u.Password, u.Email); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateUser) {
				log.Printf("User %q already exists, skipping", u.Username)
				skipped++
				continue
			}
			log.Fatalf("Failed to create user %q: %v", u.Username, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}
