package ingest

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-inquiry/src/eventmodels"
)

type Loader func(ctx context.Context) (eventmodels.Tables, error)

// FilesLoader loads and merges the given workbook files on every call.
func FilesLoader(paths ...string) Loader {
	return func(ctx context.Context) (eventmodels.Tables, error) {
		return LoadWorkbooks(paths...)
	}
}

// Cache serves the most recently loaded tables. A failed reload keeps the previous tables.
type Cache struct {
	mu       sync.RWMutex
	load     Loader
	observer func(error)
	tables   eventmodels.Tables
	loadedAt time.Time
}

func NewCache(load Loader, observer func(error)) *Cache {
	return &Cache{
		load:     load,
		observer: observer,
		tables:   eventmodels.Tables{},
	}
}

func (c *Cache) Reload(ctx context.Context) error {
	tables, err := c.load(ctx)
	if c.observer != nil {
		c.observer(err)
	}

	if err != nil {
		return fmt.Errorf("Cache.Reload: %w", err)
	}

	c.mu.Lock()
	c.tables = tables
	c.loadedAt = time.Now()
	c.mu.Unlock()

	log.Infof("loaded %d sheets", len(tables))
	return nil
}

// Tables returns the current tables. Callers must treat them as read-only.
func (c *Cache) Tables() eventmodels.Tables {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tables
}

func (c *Cache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}
