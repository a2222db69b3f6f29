package main

import (
	"fmt"
	"os"

	"github.com/nurpe/gigwork-ledger/internal/auth"
	"github.com/nurpe/gigwork-ledger/internal/config"
	"github.com/nurpe/gigwork-ledger/internal/db"
	httphandler "github.com/nurpe/gigwork-ledger/internal/http"
	"github.com/nurpe/gigwork-ledger/internal/http/middleware"
	"github.com/nurpe/gigwork-ledger/internal/logger"
	"github.com/nurpe/gigwork-ledger/internal/repository"
	"github.com/nurpe/gigwork-ledger/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	profileRepo := repository.NewProfileRepository(database)
	contractRepo := repository.NewContractRepository(database)
	ledgerRepo := repository.NewLedgerRepository(database)
	reportRepo := repository.NewReportRepository(database)

	contractService := service.NewContractService(contractRepo, log)
	ledgerService := service.NewLedgerService(ledgerRepo, cfg, log)
	reportService := service.NewReportService(reportRepo, cfg, log)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(contractService, ledgerService, reportService, log)
	authMiddleware := middleware.Auth(tokenParser, profileRepo)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting ledger service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
