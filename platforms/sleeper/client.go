package sleeper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dereckquock/keepers/cache"
	"github.com/dereckquock/keepers/model"
	log "github.com/sirupsen/logrus"
)

const (
	SleeperURL = "https://api.sleeper.app"

	// Sleeper asks clients to cache as much as possible, most of this data
	// changes at most once a day.
	DefaultTTL = 24 * time.Hour

	cacheKeyPrefix = "sleeper:"
)

// ErrLeagueNotFound is returned for league ids sleeper does not know about.
var ErrLeagueNotFound = fmt.Errorf("league %w", model.ErrNotFound)

type Client interface {
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)
	GetUsers(ctx context.Context, leagueID string) ([]model.User, error)
	GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error)
	GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error)
	// GetPlayers returns every NFL player known to sleeper, indexed by player id.
	GetPlayers(ctx context.Context) (map[string]model.Player, error)
	// GetPreviousDraftPicks returns the picks of the most recent draft of the
	// league. When userID is not empty only the picks made by that user are
	// returned.
	GetPreviousDraftPicks(ctx context.Context, leagueID, userID string) ([]model.DraftPick, error)
}

type Option func(c *client)

// WithCache stores every successful response in cache for ttl.
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
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
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

func (c *client) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	var l *sleeperLeague
	err := c.sleeperRequest(ctx, &l, "/v1/league/%s", leagueID)
	if errors.Is(err, model.ErrNotFound) || (err == nil && l == nil) {
		return nil, fmt.Errorf("%w: %s", ErrLeagueNotFound, leagueID)
	}
	if err != nil {
		return nil, err
	}
	return l.toLeague(), nil
}

func (c *client) GetUsers(ctx context.Context, leagueID string) ([]model.User, error) {
	var parsed []sleeperUser
	if err := c.sleeperRequest(ctx, &parsed, "/v1/league/%s/users", leagueID); err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		result = append(result, u.toUser())
	}
	return result, nil
}

func (c *client) GetRosters(ctx context.Context, leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.sleeperRequest(ctx, &parsed, "/v1/league/%s/rosters", leagueID); err != nil {
		return nil, err
	}

	result := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		result = append(result, r.toRoster())
	}
	return result, nil
}

func (c *client) GetMatchups(ctx context.Context, leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	if err := c.sleeperRequest(ctx, &parsed, "/v1/league/%s/matchups/%d", leagueID, week); err != nil {
		return nil, err
	}

	result := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		result = append(result, m.toMatchup())
	}
	return result, nil
}

func (c *client) GetPlayers(ctx context.Context) (map[string]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.sleeperRequest(ctx, &parsed, "/v1/players/nfl"); err != nil {
		return nil, err
	}

	result := make(map[string]model.Player, len(parsed))
	for id, p := range parsed {
		player := p.toPlayer()
		if player.ID == "" {
			player.ID = id
		}
		result[id] = *player
	}
	return result, nil
}

func (c *client) GetPreviousDraftPicks(ctx context.Context, leagueID, userID string) ([]model.DraftPick, error) {
	var drafts []sleeperDraft
	if err := c.sleeperRequest(ctx, &drafts, "/v1/league/%s/drafts", leagueID); err != nil {
		return nil, err
	}

	// The drafts are listed oldest first.
	if len(drafts) == 0 {
		return []model.DraftPick{}, nil
	}
	latest := drafts[len(drafts)-1]

	var picks []sleeperDraftPick
	if err := c.sleeperRequest(ctx, &picks, "/v1/draft/%s/picks", latest.DraftID); err != nil {
		return nil, err
	}

	result := make([]model.DraftPick, 0, len(picks))
	for _, p := range picks {
		if userID != "" && p.PickedBy != userID {
			continue
		}
		result = append(result, p.toDraftPick())
	}
	return result, nil
}

// sleeperRequest decodes the response for path into res, serving it from the
// cache when possible. Sleeper answers with a null body for leagues and drafts
// it does not know about, that is reported as model.ErrNotFound and never
// cached. Every other failure is wrapped with model.ErrUnavailable.
func (c *client) sleeperRequest(ctx context.Context, res any, path string, args ...any) error {
	p := fmt.Sprintf(path, args...)
	key := cacheKeyPrefix + p

	if c.cache != nil && !cache.Refreshing(ctx) {
		b, found, err := c.cache.Get(ctx, key)
		if err != nil {
			log.WithError(err).Warnf("error reading %s from cache", p)
		} else if found {
			if err := json.Unmarshal(b, res); err == nil {
				return nil
			}
			log.Warnf("ignoring unparsable cache entry for %s", p)
		}
	}

	b, err := c.get(ctx, p)
	if err != nil {
		return err
	}
	if string(bytes.TrimSpace(b)) == "null" {
		return fmt.Errorf("%w: sleeper has nothing at %s", model.ErrNotFound, p)
	}

	if err := json.Unmarshal(b, res); err != nil {
		return fmt.Errorf("%w: error parsing response from sleeper for %s: %w", model.ErrUnavailable, p, err)
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, b, c.ttl); err != nil {
			log.WithError(err).Warnf("error caching %s", p)
		}
	}
	return nil
}

func (c *client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error sending http request: %w", model.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code from sleeper for %s: %d", model.ErrUnavailable, path, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response from sleeper: %w", model.ErrUnavailable, err)
	}
	return b, nil
}
