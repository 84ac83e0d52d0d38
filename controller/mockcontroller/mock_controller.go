package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/dereckquock/keepers/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetLeague(ctx context.Context, leagueID string) (*model.League, error) {
	args := c.Called(ctx, leagueID)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}

	return l, args.Error(1)
}

func (c *C) SeasonSummary(ctx context.Context, leagueID string) (*model.SeasonSummary, error) {
	args := c.Called(ctx, leagueID)

	var res *model.SeasonSummary
	if args.Get(0) != nil {
		res = args.Get(0).(*model.SeasonSummary)
	}

	return res, args.Error(1)
}

func (c *C) TopRegularSeasonScorer(ctx context.Context, leagueID string) (*model.TopScorer, error) {
	args := c.Called(ctx, leagueID)

	var res *model.TopScorer
	if args.Get(0) != nil {
		res = args.Get(0).(*model.TopScorer)
	}

	return res, args.Error(1)
}

func (c *C) TopRegularSeasonWeeklyScorer(ctx context.Context, leagueID string) (*model.WeeklyTopScorer, error) {
	args := c.Called(ctx, leagueID)

	var res *model.WeeklyTopScorer
	if args.Get(0) != nil {
		res = args.Get(0).(*model.WeeklyTopScorer)
	}

	return res, args.Error(1)
}

func (c *C) LongestRegularSeasonWinStreak(ctx context.Context, leagueID string) (*model.WinStreak, error) {
	args := c.Called(ctx, leagueID)

	var res *model.WinStreak
	if args.Get(0) != nil {
		res = args.Get(0).(*model.WinStreak)
	}

	return res, args.Error(1)
}

func (c *C) BiggestRegularSeasonBlowout(ctx context.Context, leagueID string) (*model.MatchupMargin, error) {
	args := c.Called(ctx, leagueID)

	var res *model.MatchupMargin
	if args.Get(0) != nil {
		res = args.Get(0).(*model.MatchupMargin)
	}

	return res, args.Error(1)
}

func (c *C) ClosestRegularSeasonWin(ctx context.Context, leagueID string) (*model.MatchupMargin, error) {
	args := c.Called(ctx, leagueID)

	var res *model.MatchupMargin
	if args.Get(0) != nil {
		res = args.Get(0).(*model.MatchupMargin)
	}

	return res, args.Error(1)
}

func (c *C) EasiestRegularSeasonSchedule(ctx context.Context, leagueID string) (*model.ScheduleStrength, error) {
	args := c.Called(ctx, leagueID)

	var res *model.ScheduleStrength
	if args.Get(0) != nil {
		res = args.Get(0).(*model.ScheduleStrength)
	}

	return res, args.Error(1)
}

func (c *C) HardestRegularSeasonSchedule(ctx context.Context, leagueID string) (*model.ScheduleStrength, error) {
	args := c.Called(ctx, leagueID)

	var res *model.ScheduleStrength
	if args.Get(0) != nil {
		res = args.Get(0).(*model.ScheduleStrength)
	}

	return res, args.Error(1)
}

func (c *C) KeeperCosts(ctx context.Context, previousLeagueID, currentLeagueID string) ([]model.KeeperTeam, error) {
	args := c.Called(ctx, previousLeagueID, currentLeagueID)

	var res []model.KeeperTeam
	if args.Get(0) != nil {
		res = args.Get(0).([]model.KeeperTeam)
	}

	return res, args.Error(1)
}

func (c *C) MarketValues(ctx context.Context) (map[string]int, error) {
	args := c.Called(ctx)

	var res map[string]int
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]int)
	}

	return res, args.Error(1)
}

func (c *C) RosterPoints(ctx context.Context, leagueID string, week int) (*model.PointsReport, error) {
	args := c.Called(ctx, leagueID, week)

	var res *model.PointsReport
	if args.Get(0) != nil {
		res = args.Get(0).(*model.PointsReport)
	}

	return res, args.Error(1)
}

func (c *C) CurrentWeek(ctx context.Context, leagueID string) (int, error) {
	args := c.Called(ctx, leagueID)
	return args.Int(0), args.Error(1)
}

func (c *C) SearchPlayers(ctx context.Context, query string) ([]model.Player, error) {
	args := c.Called(ctx, query)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) WarmCaches(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicCacheWarmup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
