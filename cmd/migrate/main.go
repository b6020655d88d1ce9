package main

import (
	"cliptube/pkg/config"
	"cliptube/pkg/database"
	"cliptube/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Error("Migration failed: %v", err)
		panic(err)
	}

	log.Info("Migrations applied")
}
