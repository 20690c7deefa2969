package diary

import (
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// loadJSON decodes the blob under key into v. It reports false when the key
// is missing or the blob cannot be decoded; read failures are logged.
func loadJSON(storage types.Storage, log *logrus.Entry, key string, v any) bool {
	data, err := storage.Get(key)
	if err != nil {
		if !errors.Is(err, types.ErrKeyNotFound) {
			log.WithError(err).WithField("key", key).Warn("read failed, starting empty")
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.WithError(err).WithField("key", key).Warn("stored data is malformed, starting empty")
		return false
	}
	return true
}

// saveJSON encodes v under key. Failures are logged only.
func saveJSON(storage types.Storage, log *logrus.Entry, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).WithField("key", key).Error("encoding failed")
		return
	}
	if err := storage.Put(key, data); err != nil {
		log.WithError(err).WithField("key", key).Error("saving failed")
	}
}
