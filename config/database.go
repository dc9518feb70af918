package config

import (
	"context"
	"time"

	"prestige-salon-backend/store"

	log "github.com/sirupsen/logrus"
)

const connectTimeout = 10 * time.Second

// ConnectDB opens the document store named by DATABASE_URL. When the URL is unset or the
// store cannot be reached it logs the cause and returns store.Unavailable, whose operations
// all fail with a StoreError.
func ConnectDB(ctx context.Context, cfg Config) store.Store {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set; database features disabled")
		return store.Unavailable{Reason: "DATABASE_URL not set"}
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	s, err := store.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.WithError(err).Error("failed to connect database")
		return store.Unavailable{Reason: err.Error()}
	}
	log.WithField("database", s.Name()).Info("database connected")
	return s
}
