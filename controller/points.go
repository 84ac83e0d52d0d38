package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/dereckquock/keepers/model"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultWeek is the week the points page opens on: the number of games the
// first roster has played, kept within the regular season.
func DefaultWeek(rosters []model.Roster) int {
	week := 1
	if len(rosters) > 0 {
		week = rosters[0].GamesPlayed()
	}
	return min(max(week, 1), model.RegularSeasonWeeks)
}

func (c *controller) CurrentWeek(ctx context.Context, leagueID string) (int, error) {
	if leagueID == "" {
		return 0, fmt.Errorf("%w: league id is required", model.ErrInvalidArgument)
	}
	rosters, err := c.sleeper.GetRosters(ctx, leagueID)
	if err != nil {
		return 0, unavailable(err)
	}
	return DefaultWeek(rosters), nil
}

func (c *controller) RosterPoints(ctx context.Context, leagueID string, week int) (*model.PointsReport, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", model.ErrInvalidArgument)
	}
	if week < 1 || week > model.RegularSeasonWeeks {
		return nil, fmt.Errorf("%w: week must be between 1 and %d, got %d", model.ErrInvalidArgument, model.RegularSeasonWeeks, week)
	}

	g, gctx := errgroup.WithContext(ctx)

	var users []model.User
	var rosters []model.Roster
	var matchups []model.Matchup
	g.Go(func() error {
		var err error
		users, err = c.sleeper.GetUsers(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = c.sleeper.GetRosters(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		matchups, err = c.sleeper.GetMatchups(gctx, leagueID, week)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading week %d points for league %s: %w", week, leagueID, unavailable(err))
	}

	return pointsReport(leagueID, week, users, rosters, matchups), nil
}

func pointsReport(leagueID string, week int, users []model.User, rosters []model.Roster, matchups []model.Matchup) *model.PointsReport {
	season := newSeasonData(users, rosters, nil)

	results := make([]model.RosterPoints, 0, len(matchups))
	for _, m := range matchups {
		rp := model.RosterPoints{
			RosterID:      m.RosterID,
			UserID:        season.owners[m.RosterID],
			StarterPoints: round2(m.Points),
			BenchPoints:   benchPoints(m),
		}
		if leader, ok := season.leader(m.RosterID); ok {
			rp.DisplayName = leader.DisplayName
			rp.AvatarURL = leader.AvatarURL
		}
		results = append(results, rp)
	}

	starters := make([]model.RosterPoints, len(results))
	copy(starters, results)
	sort.SliceStable(starters, func(i, j int) bool {
		return starters[i].StarterPoints > starters[j].StarterPoints
	})

	benches := make([]model.RosterPoints, len(results))
	copy(benches, results)
	sort.SliceStable(benches, func(i, j int) bool {
		return benches[i].BenchPoints > benches[j].BenchPoints
	})

	return &model.PointsReport{
		LeagueID: leagueID,
		Week:     week,
		Starters: starters,
		Benches:  benches,
	}
}

// benchPoints is everything the roster scored minus what its starters scored.
func benchPoints(m model.Matchup) float64 {
	total := decimal.Zero
	for _, p := range m.PlayersPoints {
		total = total.Add(toDecimal(p))
	}
	return total.Sub(toDecimal(m.Points)).Round(2).InexactFloat64()
}
