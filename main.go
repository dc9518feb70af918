package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prestige-salon-backend/config"
	"prestige-salon-backend/routes"
	"prestige-salon-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}
	cfg := config.Load()
	setupLogging(cfg)

	db := config.ConnectDB(context.Background(), cfg)
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Warn("closing database")
		}
	}()

	notifier := services.NewNotifierFromConfig(cfg)
	digest := services.NewDigestService(db, notifier)
	if notifier.SMSEnabled() && db.Available() {
		if err := digest.Start(cfg.DigestSchedule); err != nil {
			log.WithError(err).Error("booking digest disabled")
		}
	}

	r := routes.SetupRouter(routes.Deps{Config: cfg, Store: db, Notifier: notifier})
	printRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	digest.Stop()
	notifier.Wait()
}

func setupLogging(cfg config.Config) {
	log.SetFormatter(&log.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	log.SetOutput(os.Stdout)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("invalid LOG_LEVEL, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		log.WithFields(log.Fields{"method": route.Method, "path": route.Path}).Debug("route registered")
	}
}
