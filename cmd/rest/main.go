package main

import (
	"log"

	"notekeep-be/internal/bootstrap"
	"notekeep-be/internal/config"
	"notekeep-be/internal/server"
	"notekeep-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
