package controller

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dereckquock/keepers/model"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// seasonData is everything the season records are computed from. Once loaded
// it is never modified, so every record computed from the same snapshot is the
// same.
type seasonData struct {
	users   []model.User
	rosters []model.Roster
	// roster id -> user id, orphaned rosters are left out
	owners map[int]string
	// weeks[0] is week 1
	weeks [][]model.Matchup
}

func newSeasonData(users []model.User, rosters []model.Roster, weeks [][]model.Matchup) *seasonData {
	owners := make(map[int]string, len(rosters))
	for _, r := range rosters {
		if r.OwnerID != "" {
			owners[r.RosterID] = r.OwnerID
		}
	}
	// scores that are not finite count as 0
	clean := make([][]model.Matchup, len(weeks))
	for i, week := range weeks {
		clean[i] = make([]model.Matchup, len(week))
		for j, m := range week {
			m.Points = finite(m.Points)
			clean[i][j] = m
		}
	}

	return &seasonData{
		users:   users,
		rosters: rosters,
		owners:  owners,
		weeks:   clean,
	}
}

// leader resolves the owner of a roster to the user shown on a season record.
func (d *seasonData) leader(rosterID int) (model.SeasonLeader, bool) {
	return d.leaderForUser(d.owners[rosterID])
}

func (d *seasonData) leaderForUser(userID string) (model.SeasonLeader, bool) {
	if userID == "" {
		return model.SeasonLeader{}, false
	}
	for i := range d.users {
		if d.users[i].UserID == userID {
			return model.NewSeasonLeader(&d.users[i]), true
		}
	}
	return model.SeasonLeader{}, false
}

func (c *controller) loadSeason(ctx context.Context, leagueID string) (*seasonData, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", model.ErrInvalidArgument)
	}

	start := c.clock.Now()
	g, ctx := errgroup.WithContext(ctx)

	var users []model.User
	var rosters []model.Roster
	weeks := make([][]model.Matchup, model.RegularSeasonWeeks)

	g.Go(func() error {
		var err error
		users, err = c.sleeper.GetUsers(ctx, leagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = c.sleeper.GetRosters(ctx, leagueID)
		return err
	})
	for week := 1; week <= model.RegularSeasonWeeks; week++ {
		g.Go(func() error {
			m, err := c.sleeper.GetMatchups(ctx, leagueID, week)
			if err != nil {
				return err
			}
			weeks[week-1] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading season for league %s: %w", leagueID, unavailable(err))
	}

	log.WithFields(log.Fields{
		"league_id": leagueID,
		"duration":  c.clock.Now().Sub(start).Round(time.Millisecond),
	}).Debug("loaded season")
	return newSeasonData(users, rosters, weeks), nil
}

func (c *controller) SeasonSummary(ctx context.Context, leagueID string) (*model.SeasonSummary, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", model.ErrInvalidArgument)
	}

	g, gctx := errgroup.WithContext(ctx)

	var league *model.League
	var season *seasonData
	g.Go(func() error {
		var err error
		league, err = c.sleeper.GetLeague(gctx, leagueID)
		return unavailable(err)
	})
	g.Go(func() error {
		var err error
		season, err = c.loadSeason(gctx, leagueID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.SeasonSummary{
		League:           league,
		TopScorer:        topScorer(season),
		WeeklyTopScorer:  weeklyTopScorer(season),
		LongestWinStreak: longestWinStreak(season),
		BiggestBlowout:   biggestBlowout(season),
		ClosestWin:       closestWin(season),
		HardestSchedule:  hardestSchedule(season),
		EasiestSchedule:  easiestSchedule(season),
	}, nil
}

func (c *controller) TopRegularSeasonScorer(ctx context.Context, leagueID string) (*model.TopScorer, error) {
	season, err := c.loadSeason(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return topScorer(season), nil
}

func (c *controller) TopRegularSeasonWeeklyScorer(ctx context.Context, leagueID string) (*model.WeeklyTopScorer, error) {
	season, err := c.loadSeason(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return weeklyTopScorer(season), nil
}

func (c *controller) LongestRegularSeasonWinStreak(ctx context.Context, leagueID string) (*model.WinStreak, error) {
	season, err := c.loadSeason(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return longestWinStreak(season), nil
}

func (c *controller) BiggestRegularSeasonBlowout(ctx context.Context, leagueID string) (*model.MatchupMargin, error) {
	season, err := c.loadSeason(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return biggestBlowout(season), nil
}

func (c *controller) ClosestRegularSeasonWin(ctx context.Context, leagueID string) (*model.MatchupMargin, error) {
	season, err := c.loadSeason(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return closestWin(season), nil
}

func (c *controller) EasiestRegularSeasonSchedule(ctx context.Context, leagueID string) (*model.ScheduleStrength, error) {
	season, err := c.loadSeason(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return easiestSchedule(season), nil
}

func (c *controller) HardestRegularSeasonSchedule(ctx context.Context, leagueID string) (*model.ScheduleStrength, error) {
	season, err := c.loadSeason(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return hardestSchedule(season), nil
}

func topScorer(d *seasonData) *model.TopScorer {
	var order []string
	totals := make(map[string]float64)
	for _, week := range d.weeks {
		for _, m := range week {
			userID := d.owners[m.RosterID]
			if userID == "" {
				continue
			}
			if _, found := totals[userID]; !found {
				order = append(order, userID)
			}
			totals[userID] += m.Points
		}
	}

	topUserID := ""
	topPoints := math.Inf(-1)
	for _, userID := range order {
		if totals[userID] > topPoints {
			topPoints = totals[userID]
			topUserID = userID
		}
	}

	leader, ok := d.leaderForUser(topUserID)
	if !ok {
		return nil
	}
	return &model.TopScorer{
		SeasonLeader: leader,
		Points:       round2(topPoints),
	}
}

func weeklyTopScorer(d *seasonData) *model.WeeklyTopScorer {
	topRosterID := 0
	topPoints := math.Inf(-1)
	topWeek := 0
	for i, week := range d.weeks {
		for _, m := range week {
			if d.owners[m.RosterID] == "" {
				continue
			}
			if m.Points > topPoints {
				topPoints = m.Points
				topRosterID = m.RosterID
				topWeek = i + 1
			}
		}
	}

	if topWeek == 0 {
		return nil
	}
	leader, ok := d.leader(topRosterID)
	if !ok {
		return nil
	}
	return &model.WeeklyTopScorer{
		SeasonLeader: leader,
		Points:       round2(topPoints),
		Week:         topWeek,
	}
}

func longestWinStreak(d *seasonData) *model.WinStreak {
	current := make(map[int]int, len(d.rosters))
	longest := make(map[int]int, len(d.rosters))

	for _, week := range d.weeks {
		winners := make(map[int]bool)
		for _, g := range GroupMatchups(week) {
			if w, _, ok := g.winner(); ok {
				winners[w.RosterID] = true
			}
		}

		for _, r := range d.rosters {
			if winners[r.RosterID] {
				current[r.RosterID]++
			} else {
				current[r.RosterID] = 0
			}
			longest[r.RosterID] = max(longest[r.RosterID], current[r.RosterID])
		}
	}

	topRosterID := 0
	topStreak := 0
	for _, r := range d.rosters {
		if d.owners[r.RosterID] == "" {
			continue
		}
		if longest[r.RosterID] > topStreak {
			topStreak = longest[r.RosterID]
			topRosterID = r.RosterID
		}
	}

	if topStreak < 1 {
		return nil
	}
	leader, ok := d.leader(topRosterID)
	if !ok {
		return nil
	}
	return &model.WinStreak{
		SeasonLeader: leader,
		Streak:       topStreak,
	}
}

type decidedMatchup struct {
	week   int
	winner model.Matchup
	low    float64
}

func (m *decidedMatchup) margin() float64 {
	return m.winner.Points - m.low
}

// decidedMatchups lists every matchup of the season with a sole winner and a
// positive margin, in week order.
func decidedMatchups(d *seasonData) []decidedMatchup {
	var decided []decidedMatchup
	for i, week := range d.weeks {
		for _, g := range GroupMatchups(week) {
			w, low, ok := g.winner()
			if !ok || w.Points-low <= 0 {
				continue
			}
			decided = append(decided, decidedMatchup{week: i + 1, winner: w, low: low})
		}
	}
	return decided
}

func biggestBlowout(d *seasonData) *model.MatchupMargin {
	var top *decidedMatchup
	for _, m := range decidedMatchups(d) {
		if top == nil || m.margin() > top.margin() {
			top = &m
		}
	}
	return newMatchupMargin(d, top)
}

func closestWin(d *seasonData) *model.MatchupMargin {
	var top *decidedMatchup
	for _, m := range decidedMatchups(d) {
		if top == nil || m.margin() < top.margin() {
			top = &m
		}
	}
	return newMatchupMargin(d, top)
}

func newMatchupMargin(d *seasonData, m *decidedMatchup) *model.MatchupMargin {
	if m == nil {
		return nil
	}
	leader, ok := d.leader(m.winner.RosterID)
	if !ok {
		return nil
	}
	return &model.MatchupMargin{
		SeasonLeader: leader,
		Week:         m.week,
		WinnerPoints: round2(m.winner.Points),
		LoserPoints:  round2(m.low),
		Margin:       round2(m.margin()),
	}
}

// pointsAgainst sums, for every roster, the points scored by the other rosters
// in its matchups. Rosters without an opponent add nothing for that week.
func pointsAgainst(d *seasonData) (order []int, totals map[int]float64) {
	totals = make(map[int]float64)
	for _, week := range d.weeks {
		for _, g := range GroupMatchups(week) {
			total := g.totalPoints()
			for _, m := range g.Matchups {
				if _, found := totals[m.RosterID]; !found {
					order = append(order, m.RosterID)
				}
				totals[m.RosterID] += total - m.Points
			}
		}
	}
	return order, totals
}

func easiestSchedule(d *seasonData) *model.ScheduleStrength {
	return scheduleStrength(d, func(pa, best float64) bool { return pa < best })
}

func hardestSchedule(d *seasonData) *model.ScheduleStrength {
	return scheduleStrength(d, func(pa, best float64) bool { return pa > best })
}

func scheduleStrength(d *seasonData, better func(pa, best float64) bool) *model.ScheduleStrength {
	order, totals := pointsAgainst(d)

	found := false
	topRosterID := 0
	for _, rosterID := range order {
		if d.owners[rosterID] == "" {
			continue
		}
		if !found || better(totals[rosterID], totals[topRosterID]) {
			found = true
			topRosterID = rosterID
		}
	}

	if !found {
		return nil
	}
	leader, ok := d.leader(topRosterID)
	if !ok {
		return nil
	}
	return &model.ScheduleStrength{
		SeasonLeader:  leader,
		PointsAgainst: round2(totals[topRosterID]),
	}
}

// round2 rounds to cents, half away from zero. NaN and infinities are 0.
func round2(f float64) float64 {
	return toDecimal(f).Round(2).InexactFloat64()
}

func toDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(finite(f))
}

// finite returns f, or 0 for NaN and infinities.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
