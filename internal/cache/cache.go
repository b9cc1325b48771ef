// Package cache keeps the last fetched event batch and decides when to
// go back to the source. Freshness follows the proxy contract: a batch
// is fresh for the configured window, then servable stale for a further
// window while a refresh runs in the background, then expired.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"eventViewer/internal/lib/logger/sl"
	"eventViewer/internal/models"
)

type Source interface {
	Events(ctx context.Context) ([]models.Event, error)
}

type EventCache struct {
	source Source
	fresh  time.Duration
	stale  time.Duration
	log    *slog.Logger

	sf  singleflight.Group
	now func() time.Time

	mu        sync.RWMutex
	events    []models.Event
	fetchedAt time.Time
	hasBatch  bool

	// Fetches are tagged with an increasing token; a completion older
	// than the stored batch is discarded, so a slow superseded fetch
	// can never overwrite a newer result.
	nextToken uint64
	lastToken uint64
}

func New(source Source, fresh, stale time.Duration, log *slog.Logger) *EventCache {
	return &EventCache{
		source: source,
		fresh:  fresh,
		stale:  stale,
		log:    log,
		now:    time.Now,
	}
}

// Events returns the current batch, fetching from the source when the
// cache is empty or expired. A stale-but-servable batch is returned
// immediately while a refresh runs in the background. Callers must
// treat the returned slice as read-only.
func (c *EventCache) Events(ctx context.Context) ([]models.Event, error) {
	c.mu.RLock()
	events := c.events
	age := c.now().Sub(c.fetchedAt)
	hasBatch := c.hasBatch
	c.mu.RUnlock()

	if hasBatch && age < c.fresh {
		return events, nil
	}

	if hasBatch && age < c.fresh+c.stale {
		go func() {
			refreshCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := c.fetch(refreshCtx); err != nil {
				c.log.Warn("background refresh failed", sl.Err(err))
			}
		}()

		return events, nil
	}

	return c.fetch(ctx)
}

func (c *EventCache) fetch(ctx context.Context) ([]models.Event, error) {
	v, err, _ := c.sf.Do("events", func() (interface{}, error) {
		token := c.claimToken()

		events, err := c.source.Events(ctx)
		if err != nil {
			return nil, err
		}

		c.store(token, events)

		return events, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.Event), nil
}

func (c *EventCache) claimToken() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextToken++

	return c.nextToken
}

func (c *EventCache) store(token uint64, events []models.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if token <= c.lastToken {
		c.log.Debug("discarding out-of-order fetch result",
			slog.Uint64("token", token),
			slog.Uint64("stored", c.lastToken),
		)

		return
	}

	c.lastToken = token
	c.events = events
	c.fetchedAt = c.now()
	c.hasBatch = true
}
