// Package storagetest provides Storage doubles for store tests.
package storagetest

import (
	"errors"
	"sync"

	"github.com/mesh-intelligence/dietlog/internal/storage"
	"github.com/mesh-intelligence/dietlog/pkg/types"
)

// ErrQuotaExceeded is the write error Flaky returns once writes are failed.
var ErrQuotaExceeded = errors.New("quota exceeded")

// Flaky wraps a Memory backend and can be told to fail reads or writes.
type Flaky struct {
	*storage.Memory

	mu       sync.Mutex
	failGets bool
	failPuts bool
	putCount int
}

// NewFlaky returns a Flaky backend with no stored keys.
func NewFlaky() *Flaky {
	return &Flaky{Memory: storage.NewMemory()}
}

// FailGets makes every subsequent Get return an error.
func (f *Flaky) FailGets(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGets = fail
}

// FailPuts makes every subsequent Put return ErrQuotaExceeded.
func (f *Flaky) FailPuts(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPuts = fail
}

// Puts returns the number of Put calls seen, failed ones included.
func (f *Flaky) Puts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.putCount
}

// Get fails when FailGets is set.
func (f *Flaky) Get(key string) ([]byte, error) {
	f.mu.Lock()
	fail := f.failGets
	f.mu.Unlock()
	if fail {
		return nil, errors.New("storage unreadable")
	}
	return f.Memory.Get(key)
}

// Put fails when FailPuts is set.
func (f *Flaky) Put(key string, value []byte) error {
	f.mu.Lock()
	f.putCount++
	fail := f.failPuts
	f.mu.Unlock()
	if fail {
		return ErrQuotaExceeded
	}
	return f.Memory.Put(key, value)
}

var _ types.Storage = (*Flaky)(nil)
