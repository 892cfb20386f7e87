package main

import (
	"context"
	"enquiry-relay/config"
	_ "enquiry-relay/docs" // Important for Swagger
	v1 "enquiry-relay/internal/delivery/http/v1"
	"enquiry-relay/internal/usecase"
	"enquiry-relay/pkg/email"
	"enquiry-relay/pkg/logger"
	"enquiry-relay/pkg/validation"
	"enquiry-relay/web"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title           Enquiry Relay API
// @version         1.0
// @description     Contact form endpoint that validates enquiries and relays them through a transactional email provider.
// @host            localhost:3000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting enquiry relay", "port", cfg.Port, "provider", cfg.MailProvider)
	gin.SetMode(cfg.GinMode)

	// 3. Setup Email Sender
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Invalid mail provider configuration", "error", err)
		os.Exit(1)
	}
	if missing := cfg.MailMissing(); len(missing) > 0 {
		logger.Log.Warn("Mail configuration incomplete - contact form will answer 503",
			"missing", strings.Join(missing, ", "))
	}

	// 4. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, usecase.ContactSettings{
		BrandName:   cfg.BrandName,
		Domain:      cfg.MailgunDomain,
		Recipients:  cfg.MailgunTo,
		From:        cfg.MailgunFrom,
		SendTimeout: cfg.SendTimeout,
	}, validation.New())

	healthUC := usecase.NewHealthUsecase(cfg.MailProvider, cfg.MailMissing())

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
		Assets:    web.Assets,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
