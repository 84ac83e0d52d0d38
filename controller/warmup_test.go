package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dereckquock/keepers/cache"
	"github.com/dereckquock/keepers/model"
	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWarmCaches(t *testing.T) {
	c, s, fp := newMockController(t)

	// warmups replace cached values instead of reading them
	refreshing := mock.MatchedBy(func(ctx context.Context) bool { return cache.Refreshing(ctx) })
	s.On("GetPlayers", refreshing).Return(map[string]model.Player{"1": {ID: "1"}}, nil).Once()
	fp.On("LoadMarketValues", refreshing).Return(map[string]int{"A": 1}, nil).Once()

	assert.NoError(t, c.WarmCaches(context.Background()))
	s.AssertExpectations(t)
	fp.AssertExpectations(t)
}

func TestWarmCaches_error(t *testing.T) {
	c, s, fp := newMockController(t)

	s.On("GetPlayers", mock.Anything).Return(nil, errors.New("timeout"))

	assert.Error(t, c.WarmCaches(context.Background()))
	fp.AssertNotCalled(t, "LoadMarketValues", mock.Anything)
}

func TestRunPeriodicCacheWarmup(t *testing.T) {
	c, s, fp := newMockController(t)
	clk := c.clock.(*clock.Mock)

	warmed := make(chan bool, 10)
	s.On("GetPlayers", mock.Anything).Return(map[string]model.Player{}, nil)
	fp.On("LoadMarketValues", mock.Anything).Return(map[string]int{}, nil).Run(func(args mock.Arguments) {
		warmed <- true
	})

	shutdown := make(chan bool)
	var wg sync.WaitGroup
	wg.Add(1)
	go c.RunPeriodicCacheWarmup(time.Hour, shutdown, &wg)

	// give the goroutine time to create its ticker
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 2; i++ {
		clk.Add(time.Hour)
		select {
		case <-warmed:
		case <-time.After(5 * time.Second):
			t.Fatalf("cache warmup %d did not run", i+1)
		}
	}

	close(shutdown)
	wg.Wait()
	s.AssertNumberOfCalls(t, "GetPlayers", 2)
}
