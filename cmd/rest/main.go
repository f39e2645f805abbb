package main

import (
	"context"
	"log"

	"second-brain-be/internal/bootstrap"
	"second-brain-be/internal/config"
	"second-brain-be/internal/server"
	"second-brain-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Panicf("Unable to start capture consumer: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
