package controller

import (
	"context"
	"sync"
	"time"

	"github.com/dereckquock/keepers/cache"
	log "github.com/sirupsen/logrus"
)

// WarmCaches refetches the data every keepers page needs, replacing whatever
// is cached, so requests never pay for the players download.
func (c *controller) WarmCaches(ctx context.Context) error {
	start := c.clock.Now()
	ctx = cache.WithRefresh(ctx)

	players, err := c.sleeper.GetPlayers(ctx)
	if err != nil {
		return err
	}
	values, err := c.fantasyPros.LoadMarketValues(ctx)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"players":       len(players),
		"market_values": len(values),
		"duration":      c.clock.Now().Sub(start).Round(time.Millisecond),
	}).Info("cache warmup finished")
	return nil
}

func (c *controller) RunPeriodicCacheWarmup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := c.clock.Ticker(frequency)
	defer ticker.Stop()
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			c.warmup()
		}
	}
}

func (c *controller) warmup() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := c.WarmCaches(ctx); err != nil {
		log.WithError(err).Warn("cache warmup failed")
	}
}
