// Package storage implements the durable key-value backends that dietlog
// stores mirror into memory. Three backends are available: sqlite (the
// default, a single database file), file (one JSON document per key), and
// memory (process lifetime only).
package storage

import (
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// Open validates config and returns the selected backend, creating DataDir
// when the backend needs one.
func Open(config types.Config) (types.Storage, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Backend {
	case types.BackendMemory:
		return NewMemory(), nil
	case types.BackendFile:
		dir, err := ensureDataDir(config.DataDir)
		if err != nil {
			return nil, err
		}
		return NewFile(dir), nil
	default:
		dir, err := ensureDataDir(config.DataDir)
		if err != nil {
			return nil, err
		}
		return OpenSQLite(dir)
	}
}

func ensureDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return dataDir, nil
}

// validKey rejects keys that cannot name a file or a row.
func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return types.ErrInvalidKey
	}
	return nil
}
