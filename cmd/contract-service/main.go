package main

import (
	"fmt"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nurpe/hr-contracts/internal/auth"
	"github.com/nurpe/hr-contracts/internal/config"
	"github.com/nurpe/hr-contracts/internal/db"
	"github.com/nurpe/hr-contracts/internal/excel"
	httphandler "github.com/nurpe/hr-contracts/internal/http"
	"github.com/nurpe/hr-contracts/internal/http/middleware"
	"github.com/nurpe/hr-contracts/internal/identity"
	"github.com/nurpe/hr-contracts/internal/logger"
	"github.com/nurpe/hr-contracts/internal/metrics"
	"github.com/nurpe/hr-contracts/internal/notify"
	"github.com/nurpe/hr-contracts/internal/pdf"
	"github.com/nurpe/hr-contracts/internal/repository"
	"github.com/nurpe/hr-contracts/internal/service"
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

	contractRepo := repository.NewContractRepository(database)
	identityClient := identity.New(cfg.Clients.IdentityBaseURL, cfg.Clients.Timeout)

	var notifier service.Notifier
	switch cfg.Notify.Transport {
	case config.NotifyTransportNATS:
		var conn *nats.Conn
		conn, err = notify.Connect(cfg.Notify.NATSURL, cfg.Clients.Timeout)
		if err != nil {
			log.Fatal().Err(err).Str("url", cfg.Notify.NATSURL).Msg("failed to connect nats")
		}
		defer notify.Close(conn)
		notifier = notify.NewNATS(conn, cfg.Notify.NATSSubject, cfg.Clients.Timeout)
	default:
		notifier = notify.NewHTTP(cfg.Clients.MessageBaseURL, cfg.Clients.Timeout)
	}
	log.Info().Str("transport", cfg.Notify.Transport).Msg("notifier ready")

	pdfGenerator, err := pdf.NewGenerator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init pdf generator")
	}
	excelGenerator := excel.NewGenerator()

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	contractService := service.NewContractService(contractRepo, notifier, tokenParser, cfg, log, appMetrics)
	onboardingService := service.NewOnboardingService(contractRepo, identityClient, tokenParser, log, appMetrics)
	documentService := service.NewDocumentService(contractRepo, excelGenerator, pdfGenerator, tokenParser, appMetrics)

	handler := httphandler.NewHandler(contractService, onboardingService, documentService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, log, cfg.Environment, cfg.HTTP.CORSAllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting contract service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
