package cache

import (
	"sync"
	"time"

	"github.com/restevesd/arnes/internal/models"
)

// ModelCache is an in-memory store of loaded regression models keyed by resource name.
// Entries are read-only once stored.
type ModelCache struct {
	models map[string]modelEntry
	mu     sync.RWMutex
}

type modelEntry struct {
	model    *models.RegressionModel
	loadedAt time.Time
}

// NewModelCache creates an empty model cache
func NewModelCache() *ModelCache {
	return &ModelCache{
		models: make(map[string]modelEntry),
	}
}

// Get retrieves a loaded model if present
func (c *ModelCache) Get(name string) (*models.RegressionModel, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.models[name]
	if !exists {
		return nil, false
	}
	return entry.model, true
}

// Set stores a loaded model
func (c *ModelCache) Set(name string, m *models.RegressionModel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.models[name] = modelEntry{
		model:    m,
		loadedAt: time.Now(),
	}
}

// LoadedAt reports when a model was stored, or the zero time if it is absent
func (c *ModelCache) LoadedAt(name string) time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.models[name].loadedAt
}

// Len returns the number of cached models
func (c *ModelCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.models)
}
