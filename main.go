package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dereckquock/keepers/cache"
	"github.com/dereckquock/keepers/config"
	"github.com/dereckquock/keepers/controller"
	"github.com/dereckquock/keepers/platforms/fantasypros"
	"github.com/dereckquock/keepers/platforms/sleeper"
	"github.com/dereckquock/keepers/web"
	"github.com/itbasis/go-clock"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}
	setupLogging(cfg)

	clock := clock.New()

	var c cache.Cache
	if cfg.RedisURL != "" {
		r, err := cache.NewRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("cannot connect to redis: %v", err)
		}
		defer r.Close()
		c = r
		log.Info("caching upstream responses in redis")
	} else {
		c = cache.NewMemory(clock)
		log.Info("caching upstream responses in memory")
	}

	sleeperClient, err := sleeper.New(sleeper.WithURL(cfg.SleeperURL), sleeper.WithCache(c, cfg.CacheTTL))
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	fantasyProsClient, err := fantasypros.New(fantasypros.WithURL(cfg.MarketValuesURL), fantasypros.WithCache(c, cfg.CacheTTL))
	if err != nil {
		log.Fatalf("error creating fantasypros client: %v", err)
	}

	ctrl, err := controller.New(clock, sleeperClient, fantasyProsClient)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(cfg.Port, ctrl, cfg.Leagues)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Errorf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Fill the caches in the background so the first page load is fast.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := ctrl.WarmCaches(ctx); err != nil {
			log.WithError(err).Warn("initial cache warmup failed")
		}
	}()

	wg.Add(1)
	go ctrl.RunPeriodicCacheWarmup(cfg.WarmupFrequency, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info("server shutdown")
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("unknown log level '%s', using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
