package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/julianstephens/energycoach/internal/errors"
	"github.com/julianstephens/energycoach/internal/logger"
)

// GetJSON decodes the value under key into dst. It reports false and leaves
// dst untouched when the key is missing or the store or payload is unusable,
// so callers can pre-fill dst with their default.
func GetJSON(p Provider, key string, dst any) bool {
	if p == nil {
		return false
	}
	raw, err := p.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Storage read failed, using default", "key", key, "error", fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Warn("Stored value is not valid JSON, using default", "key", key, "error", err)
		return false
	}
	return true
}

// SetJSON encodes v under key. Failures are logged and returned wrapped in
// ErrStorageUnavailable; callers are free to ignore them.
func SetJSON(p Provider, key string, v any) error {
	if p == nil {
		return fmt.Errorf("%w: no store configured", apperrors.ErrStorageUnavailable)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := p.Set(key, string(data)); err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
		logger.Warn("Storage write failed", "key", key, "error", err)
		return err
	}
	return nil
}
