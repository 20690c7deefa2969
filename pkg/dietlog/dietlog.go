// Package dietlog is the public entry point to dietlog storage.
package dietlog

import (
	"github.com/mesh-intelligence/dietlog/internal/storage"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// Version is the dietlog release version.
const Version = "v0.3.0"

// OpenStorage opens the backend named by config.
//
// Example:
//
//	s, err := dietlog.OpenStorage(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: "/var/lib/dietlog",
//	})
//	defer s.Close()
func OpenStorage(config types.Config) (types.Storage, error) {
	return storage.Open(config)
}
