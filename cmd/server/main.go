package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_boss/internal/config"
	"bistro_boss/internal/logger"
	"bistro_boss/internal/middleware"
	"bistro_boss/internal/payment"
	"bistro_boss/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// Connect to the database
	db, err := config.OpenDatabase(cfg.Database, logger.GormLogger())
	if err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}
	defer config.Close(db)

	if cfg.Seed {
		if err := config.Seed(db); err != nil {
			logrus.WithError(err).Fatal("seeding failed")
		}
	}

	if cfg.StripeKey == "" {
		logrus.Warn("STRIPE_SECRET_KEY not set – payment intents will fail")
	}

	r := routes.SetupRouter(routes.Dependencies{
		DB:             db,
		Tokens:         middleware.NewTokenService(cfg.TokenSecret, cfg.TokenTTL),
		Gateway:        payment.NewStripeGateway(cfg.StripeKey, cfg.GatewayTimeout),
		Currency:       cfg.Currency,
		RequestTimeout: cfg.RequestTimeout,
		CORSOrigins:    cfg.CORSOrigins,
		RequestLogging: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("The bistro boss running on port: %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
	logrus.Info("server exited")
}
