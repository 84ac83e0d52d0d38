package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dereckquock/keepers/model"
	"github.com/dereckquock/keepers/platforms/fantasypros"
	"github.com/dereckquock/keepers/platforms/sleeper"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetLeague(ctx context.Context, leagueID string) (*model.League, error)

	// SeasonSummary loads the regular season once and computes every season
	// record from it.
	SeasonSummary(ctx context.Context, leagueID string) (*model.SeasonSummary, error)
	// Each season record returns nil, without an error, when there is no
	// qualifying data for it.
	TopRegularSeasonScorer(ctx context.Context, leagueID string) (*model.TopScorer, error)
	TopRegularSeasonWeeklyScorer(ctx context.Context, leagueID string) (*model.WeeklyTopScorer, error)
	LongestRegularSeasonWinStreak(ctx context.Context, leagueID string) (*model.WinStreak, error)
	BiggestRegularSeasonBlowout(ctx context.Context, leagueID string) (*model.MatchupMargin, error)
	ClosestRegularSeasonWin(ctx context.Context, leagueID string) (*model.MatchupMargin, error)
	EasiestRegularSeasonSchedule(ctx context.Context, leagueID string) (*model.ScheduleStrength, error)
	HardestRegularSeasonSchedule(ctx context.Context, leagueID string) (*model.ScheduleStrength, error)

	// KeeperCosts prices every player on the current rosters using last
	// season's draft and the current market values.
	KeeperCosts(ctx context.Context, previousLeagueID, currentLeagueID string) ([]model.KeeperTeam, error)
	MarketValues(ctx context.Context) (map[string]int, error)

	RosterPoints(ctx context.Context, leagueID string, week int) (*model.PointsReport, error)
	// CurrentWeek is the week shown when the points page is opened without one.
	CurrentWeek(ctx context.Context, leagueID string) (int, error)

	SearchPlayers(ctx context.Context, query string) ([]model.Player, error)

	WarmCaches(ctx context.Context) error
	RunPeriodicCacheWarmup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock       clock.Clock
	sleeper     sleeper.Client
	fantasyPros fantasypros.Client
}

func New(clock clock.Clock, sleeper sleeper.Client, fantasyPros fantasypros.Client) (C, error) {
	if sleeper == nil || fantasyPros == nil {
		return nil, errors.New("sleeper and fantasypros clients are required")
	}

	c := &controller{
		clock:       clock,
		sleeper:     sleeper,
		fantasyPros: fantasyPros,
	}
	return c, nil
}

func (c *controller) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", model.ErrInvalidArgument)
	}
	l, err := c.sleeper.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, unavailable(err)
	}
	return l, nil
}

// unavailable makes sure a failed upstream fetch is reported as
// model.ErrUnavailable. Unknown leagues stay model.ErrNotFound.
func unavailable(err error) error {
	if err == nil || errors.Is(err, model.ErrUnavailable) || errors.Is(err, model.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrUnavailable, err)
}
