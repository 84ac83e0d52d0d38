package mockfantasypros

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadMarketValues(ctx context.Context) (map[string]int, error) {
	args := c.Called(ctx)

	var res map[string]int
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]int)
	}

	return res, args.Error(1)
}
