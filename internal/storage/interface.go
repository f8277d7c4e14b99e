package storage

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("key not found")

// Provider is a keyed string store. Values are opaque to the store; the
// JSON helpers in this package layer typed records on top.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)

	GetConfigPath() string
}

// Migrator is implemented by stores backed by a versioned SQL schema.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
}

// IsPostgresConfig reports whether the config value is a PostgreSQL URL.
func IsPostgresConfig(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}
