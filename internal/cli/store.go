package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/energycoach/internal/storage"
	"github.com/julianstephens/energycoach/internal/storage/postgres"
	"github.com/julianstephens/energycoach/internal/storage/sqlite"
	"github.com/julianstephens/energycoach/internal/utils"
)

// ErrEmbeddedCredentials is returned for PostgreSQL URLs that carry a password.
var ErrEmbeddedCredentials = errors.New("PostgreSQL connection strings with embedded credentials are not allowed")

// OpenStore picks the backend for a --config value: PostgreSQL for
// postgres:// URLs, otherwise a SQLite file path. The store is not loaded.
func OpenStore(config string) (storage.Provider, error) {
	if storage.IsPostgresConfig(config) {
		if valid, err := postgres.ValidateConnString(config); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, ErrEmbeddedCredentials
			}
			return nil, err
		}
		return postgres.New(config), nil
	}
	path, err := utils.ExpandHome(config)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	return sqlite.NewStore(path), nil
}
