package fantasypros

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dereckquock/keepers/cache"
	"github.com/dereckquock/keepers/model"
	log "github.com/sirupsen/logrus"
)

// DraftWizardURL lists the projected auction values for a 12 team, $200 budget,
// half PPR league with QB, 2RB, 2WR, TE, FLEX, DST, K and 5 bench spots.
const DraftWizardURL = "https://draftwizard.fantasypros.com/editor/createFromProjections.jsp?sport=nfl&scoringSystem=HALF&showAuction=Y&teams=12&tb=200&QB=1&RB=2&WR=2&TE=1&DST=1&K=1&BN=5&WR/RB/TE=1"

const (
	DefaultTTL = 24 * time.Hour

	marketValuesKey = "fantasypros:market-values"
)

type Client interface {
	// LoadMarketValues returns the current auction value in dollars for every
	// listed player, indexed by the player's full name without suffixes.
	LoadMarketValues(ctx context.Context) (map[string]int, error)
}

type Option func(c *client)

func WithCache(cache cache.Cache, ttl time.Duration) Option {
	return func(c *client) {
		c.cache = cache
		c.ttl = ttl
	}
}

func WithURL(url string) Option {
	return func(c *client) {
		if url != "" {
			c.url = url
		}
	}
}

type client struct {
	url        string
	httpClient *http.Client
	cache      cache.Cache
	ttl        time.Duration
}

func New(opts ...Option) (Client, error) {
	c := &client{
		url: DraftWizardURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		ttl: DefaultTTL,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func NewForTest(url string, opts ...Option) Client {
	c := &client{
		url:        url,
		httpClient: http.DefaultClient,
		ttl:        DefaultTTL,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *client) LoadMarketValues(ctx context.Context) (map[string]int, error) {
	if c.cache != nil && !cache.Refreshing(ctx) {
		b, found, err := c.cache.Get(ctx, marketValuesKey)
		if err != nil {
			log.WithError(err).Warn("error reading market values from cache")
		} else if found {
			var values map[string]int
			if err := json.Unmarshal(b, &values); err == nil {
				return values, nil
			}
		}
	}

	page, err := c.getPage(ctx)
	if err != nil {
		return nil, err
	}

	values, err := parseMarketValues(page)
	if err != nil {
		return nil, err
	}
	log.WithField("players", len(values)).Info("loaded market values from fantasypros")

	if c.cache != nil {
		b, err := json.Marshal(values)
		if err == nil {
			err = c.cache.Set(ctx, marketValuesKey, b, c.ttl)
		}
		if err != nil {
			log.WithError(err).Warn("error caching market values")
		}
	}
	return values, nil
}

func (c *client) getPage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("error creating fantasypros http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: error sending fantasypros http request: %w", model.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status code from fantasypros: %d", model.ErrUnavailable, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: error reading fantasypros response: %w", model.ErrUnavailable, err)
	}
	return string(b), nil
}
