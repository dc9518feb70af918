package store

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Open connects to the store addressed by rawURL. The scheme selects the backend:
// postgres/postgresql, mongodb/mongodb+srv or memory.
func Open(ctx context.Context, rawURL, name string) (Store, error) {
	if err := CheckKinds(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("connection string not set: %w", ErrUnavailable)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		return OpenPostgres(ctx, rawURL)
	case "mongodb", "mongodb+srv":
		return OpenMongo(ctx, rawURL, name)
	case "memory":
		return NewMemoryStore(name), nil
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", u.Scheme)
	}
}
