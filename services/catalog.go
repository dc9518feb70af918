package services

import (
	"context"
	"fmt"

	"prestige-salon-backend/metrics"
	"prestige-salon-backend/models"
	"prestige-salon-backend/store"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Catalog serves the salon's service list and seeds the defaults into an empty collection.
//
// Concurrent first reads within one process share a single seeding pass. Processes sharing a
// store are not coordinated and may each seed once.
type Catalog struct {
	store store.Store
	seed  singleflight.Group
}

func NewCatalog(s store.Store) *Catalog {
	return &Catalog{store: s}
}

// ListServices returns every service in insertion order, seeding defaults first if none exist.
func (c *Catalog) ListServices(ctx context.Context) ([]store.Document, error) {
	docs, err := c.store.GetDocuments(ctx, store.KindService)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs, nil
	}

	// The flight outlives the caller that started it; other readers may be waiting on it.
	seedCtx := context.WithoutCancel(ctx)
	v, err, _ := c.seed.Do("services", func() (interface{}, error) {
		return c.seedDefaults(seedCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]store.Document), nil
}

func (c *Catalog) seedDefaults(ctx context.Context) ([]store.Document, error) {
	// A flight that finished just before this one may already have seeded.
	docs, err := c.store.GetDocuments(ctx, store.KindService)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs, nil
	}

	for _, s := range models.DefaultServices() {
		if err := models.Validate(&s); err != nil {
			return nil, fmt.Errorf("default service %q: %w", models.Text(s.Title), err)
		}
		if _, err := c.store.CreateDocument(ctx, store.KindService, s); err != nil {
			return nil, err
		}
		metrics.ServicesSeeded.Inc()
	}
	log.WithField("count", len(models.DefaultServices())).Info("seeded default services")

	return c.store.GetDocuments(ctx, store.KindService)
}
