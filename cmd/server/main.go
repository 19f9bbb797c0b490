package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventgate/config"
	_ "eventgate/docs"
	"eventgate/internal/adapters/auth"
	"eventgate/internal/adapters/email"
	delivery "eventgate/internal/delivery/http"
	"eventgate/internal/delivery/http/controllers"
	"eventgate/internal/delivery/http/middleware"
	"eventgate/internal/idgen"
	"eventgate/internal/repository/postgres"
	"eventgate/internal/services"

	"golang.org/x/crypto/bcrypt"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = 15 * time.Minute
)

// @title EventGate API
// @version 1.0
// @description Event check-in platform: organizers manage events, gates, and guests; gate devices authenticate with access codes and process scans.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Repositories
	organizerRepo := postgres.NewOrganizerRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	gateRepo := postgres.NewGateRepository(db)
	guestRepo := postgres.NewGuestRepository(db)
	scanRepo := postgres.NewScanRepository(db)
	sessionRepo := postgres.NewGateSessionRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)
	gateTokenIssuer := auth.NewGateTokenIssuer(cfg.GateSessionSecret)
	gateTokenVerifier := auth.NewGateTokenVerifier(cfg.GateSessionSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to initialize mailer", "error", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	organizerService := services.NewOrganizerService(organizerRepo, hasher, tokenIssuer)
	eventService := services.NewEventService(eventRepo)
	gateService := services.NewGateService(gateRepo, eventRepo, idgen.AccessCodes{})
	guestService := services.NewGuestService(guestRepo, eventRepo, emailService, logger)
	scanService := services.NewScanService(scanRepo, guestRepo, gateRepo, eventRepo, logger)
	sessionService := services.NewGateSessionService(gateRepo, sessionRepo, gateTokenIssuer)

	// Controllers
	organizerController := controllers.NewOrganizerController(logger, organizerService)
	eventController := controllers.NewEventController(logger, eventService)
	gateController := controllers.NewGateController(logger, gateService, sessionService, scanService)
	guestController := controllers.NewGuestController(logger, guestService, scanService)
	scanController := controllers.NewScanController(logger, scanService)

	mux := delivery.NewRouter(
		organizerController,
		eventController,
		gateController,
		guestController,
		scanController,
		tokenVerifier,
		gateTokenVerifier,
	)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.AllowedOriginList(), handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Expired gate sessions are swept in the background so revoked devices
	// don't accumulate stale rows.
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := sessionService.SweepExpired(ctx)
				if err != nil {
					logger.Error("gate session sweep failed", "error", err)
					continue
				}
				if n > 0 {
					logger.Info("swept expired gate sessions", "count", n)
				}
			}
		}
	}()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
