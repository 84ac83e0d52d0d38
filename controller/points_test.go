package controller

import (
	"context"
	"math"
	"testing"

	"github.com/dereckquock/keepers/model"
	"github.com/dereckquock/keepers/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeek(t *testing.T) {
	tests := map[string]struct {
		rosters  []model.Roster
		expected int
	}{
		"no rosters":        {rosters: nil, expected: 1},
		"preseason":         {rosters: []model.Roster{{}}, expected: 1},
		"mid season":        {rosters: []model.Roster{{Wins: 3, Losses: 2, Ties: 1}}, expected: 6},
		"first roster only": {rosters: []model.Roster{{Wins: 1}, {Wins: 9}}, expected: 1},
		"end of season":     {rosters: []model.Roster{{Wins: 10, Losses: 4}}, expected: 14},
		"playoffs":          {rosters: []model.Roster{{Wins: 12, Losses: 4}}, expected: 14},
		"negative record":   {rosters: []model.Roster{{Wins: -3}}, expected: 1},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DefaultWeek(tc.rosters); got != tc.expected {
				t.Errorf("expected week %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestCurrentWeek(t *testing.T) {
	c := newController(t)

	week, err := c.CurrentWeek(context.Background(), testutils.SleeperLeagueID)
	require.NoError(t, err)
	assert.Equal(t, 3, week)

	_, err = c.CurrentWeek(context.Background(), "")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestRosterPoints(t *testing.T) {
	c := newController(t)

	report, err := c.RosterPoints(context.Background(), testutils.SleeperLeagueID, 1)
	require.NoError(t, err)

	assert.Equal(t, testutils.SleeperLeagueID, report.LeagueID)
	assert.Equal(t, 1, report.Week)

	type row struct {
		rosterID int
		points   float64
	}
	var starters, benches []row
	for _, r := range report.Starters {
		starters = append(starters, row{r.RosterID, r.StarterPoints})
	}
	for _, r := range report.Benches {
		benches = append(benches, row{r.RosterID, r.BenchPoints})
	}

	assert.Equal(t, []row{{1, 100.5}, {4, 95}, {3, 90}, {2, 80.25}}, starters)
	assert.Equal(t, []row{{1, 12.3}, {3, 5.55}, {4, 1.11}, {2, 0}}, benches)

	first := report.Starters[0]
	assert.Equal(t, "u1", first.UserID)
	assert.Equal(t, "alice", first.DisplayName)
	assert.Equal(t, "https://sleepercdn.com/avatars/thumbs/av1", first.AvatarURL)

	// orphaned rosters are still listed
	orphan := report.Starters[1]
	assert.Equal(t, "", orphan.UserID)
	assert.Equal(t, "", orphan.DisplayName)
}

func TestRosterPoints_benchRoundTrip(t *testing.T) {
	c := newController(t)

	report, err := c.RosterPoints(context.Background(), testutils.SleeperLeagueID, 1)
	require.NoError(t, err)

	matchups, err := c.sleeper.GetMatchups(context.Background(), testutils.SleeperLeagueID, 1)
	require.NoError(t, err)

	full := make(map[int]float64)
	for _, m := range matchups {
		total := decimal.Zero
		for _, p := range m.PlayersPoints {
			total = total.Add(decimal.NewFromFloat(p))
		}
		full[m.RosterID] = total.Round(2).InexactFloat64()
	}

	bench := make(map[int]float64)
	for _, r := range report.Benches {
		bench[r.RosterID] = r.BenchPoints
	}
	for _, r := range report.Starters {
		got := decimal.NewFromFloat(r.StarterPoints).Add(decimal.NewFromFloat(bench[r.RosterID])).InexactFloat64()
		assert.Equal(t, full[r.RosterID], got, "roster %d", r.RosterID)
		assert.Equal(t, got, r.TotalPoints(), "roster %d", r.RosterID)
	}
}

func TestPointsReport_stableOrder(t *testing.T) {
	matchups := []model.Matchup{
		{RosterID: 1, Points: 80, PlayersPoints: map[string]float64{"a": 80, "b": 10}},
		{RosterID: 2, Points: 90, PlayersPoints: map[string]float64{"c": 90, "d": 10}},
		{RosterID: 3, Points: 80, PlayersPoints: map[string]float64{"e": 80, "f": 10}},
	}

	report := pointsReport("L1", 2, nil, nil, matchups)

	var starters, benches []int
	for _, r := range report.Starters {
		starters = append(starters, r.RosterID)
	}
	for _, r := range report.Benches {
		benches = append(benches, r.RosterID)
	}
	assert.Equal(t, []int{2, 1, 3}, starters)
	assert.Equal(t, []int{1, 2, 3}, benches)
}

func TestPointsReport_nonFiniteScores(t *testing.T) {
	matchups := []model.Matchup{
		{RosterID: 1, Points: math.NaN(), PlayersPoints: map[string]float64{"a": 10, "b": math.Inf(1)}},
		{RosterID: 2, Points: 5, PlayersPoints: map[string]float64{"c": 5, "d": 2.5}},
	}

	report := pointsReport("L1", 1, nil, nil, matchups)

	require.Len(t, report.Starters, 2)
	assert.Equal(t, 2, report.Starters[0].RosterID)
	assert.Equal(t, 0.0, report.Starters[1].StarterPoints)

	require.Len(t, report.Benches, 2)
	assert.Equal(t, 1, report.Benches[0].RosterID)
	assert.Equal(t, 10.0, report.Benches[0].BenchPoints)
	assert.Equal(t, 2.5, report.Benches[1].BenchPoints)
}

func TestRosterPoints_errors(t *testing.T) {
	c := newController(t)
	ctx := context.Background()

	tests := map[string]struct {
		leagueID string
		week     int
		wantErr  error
	}{
		"empty league":   {leagueID: "", week: 1, wantErr: model.ErrInvalidArgument},
		"week zero":      {leagueID: testutils.SleeperLeagueID, week: 0, wantErr: model.ErrInvalidArgument},
		"playoff week":   {leagueID: testutils.SleeperLeagueID, week: 15, wantErr: model.ErrInvalidArgument},
		"failing week":   {leagueID: testutils.SleeperBrokenLeagueID, week: 5, wantErr: model.ErrUnavailable},
		"unknown league": {leagueID: "404", week: 1, wantErr: model.ErrNotFound},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			report, err := c.RosterPoints(ctx, tc.leagueID, tc.week)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, report)
		})
	}
}
