package testutils

import (
	"github.com/itbasis/go-clock"
)

// TestController holds the fake upstream servers a real controller is wired
// to in tests.
type TestController struct {
	Clock           *clock.Mock
	fakeSleeper     *FakeSleeperServer
	fakeFantasyPros *FakeFantasyProsServer
}

func (c *TestController) Close() {
	c.fakeSleeper.Close()
	c.fakeFantasyPros.Close()
}

func (c *TestController) SleeperURL() string {
	return c.fakeSleeper.URL()
}

func (c *TestController) FantasyProsURL() string {
	return c.fakeFantasyPros.URL()
}

func NewTestController() *TestController {
	return &TestController{
		Clock:           clock.NewMock(),
		fakeSleeper:     NewFakeSleeperServer(),
		fakeFantasyPros: NewFakeFantasyProsServer(),
	}
}
