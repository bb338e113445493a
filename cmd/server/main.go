package main

import (
	"fmt"

	"attendance-registry/internal/config"
	"attendance-registry/internal/database"
	"attendance-registry/internal/handlers"
	"attendance-registry/internal/logger"
	"attendance-registry/internal/repository"
	"attendance-registry/internal/server"
	"attendance-registry/internal/services"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		logger.L.Fatal().Err(err).Msg("init logger")
	}
	if cfg.GeneratedSecret {
		logger.L.Warn().Msg("SESSION_SECRET is not set, sessions will not survive a restart")
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.L.Fatal().Err(err).Msg("failed to open database")
	}

	auth := services.NewAuthService(repository.NewUserRepository(db), cfg.AdminUsername, cfg.AdminPassword)
	if _, err := auth.Bootstrap(); err != nil {
		logger.L.Fatal().Err(err).Msg("failed to create administrator account")
	}
	records := services.NewRecordService(repository.NewRecordRepository(db))

	r := server.NewRouter(cfg, handlers.New(auth, records, cfg.ExportDir, cfg.ChartAssetsHost))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.L.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		logger.L.Fatal().Err(err).Msg("server error")
	}
}
