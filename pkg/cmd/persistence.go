package cmd

import (
	"fmt"
	"strings"

	"github.com/pressline/pressline/pkg/persistence"
	"github.com/pressline/pressline/pkg/persistence/file"
	"github.com/pressline/pressline/pkg/persistence/redis"
)

// NewPersistence selects the storage backend from the database URL scheme.
// redis:// urls get the Redis store; anything else is treated as a file root.
func NewPersistence(databaseURL string) (persistence.Persistence, error) {
	switch parsePersistenceProvider(databaseURL) {
	case "redis":
		return redis.NewPersistence(databaseURL)
	default:
		return file.NewPersistence(strings.TrimPrefix(databaseURL, "file://")), nil
	}
}

func parsePersistenceProvider(databaseURL string) string {
	scheme, _, found := strings.Cut(databaseURL, "://")
	if !found {
		return "file"
	}

	switch scheme {
	case "redis", "rediss":
		return "redis"
	case "file":
		return "file"
	default:
		return "file"
	}
}

// MustNewPersistence is NewPersistence for main wiring, where a bad database
// URL is unrecoverable.
func MustNewPersistence(databaseURL string) persistence.Persistence {
	p, err := NewPersistence(databaseURL)
	if err != nil {
		panic(fmt.Errorf("failed to create persistence: %w", err))
	}

	return p
}
