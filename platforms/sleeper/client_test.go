package sleeper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dereckquock/keepers/cache"
	"github.com/dereckquock/keepers/model"
	"github.com/dereckquock/keepers/testutils"
	"github.com/itbasis/go-clock"
)

func TestGetLeague(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	l, err := c.GetLeague(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	expected := &model.League{LeagueID: "1001", Name: "Keepers League", Avatar: "leagueavatar", Season: "2024"}
	if !reflect.DeepEqual(l, expected) {
		t.Errorf("expected league %v, got %v", expected, l)
	}
	if l.AvatarURL() != "https://sleepercdn.com/avatars/thumbs/leagueavatar" {
		t.Errorf("unexpected avatar url: %s", l.AvatarURL())
	}
}

func TestGetLeague_notFound(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	l, err := c.GetLeague(context.Background(), "404")
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected a league not found error, got: %v", err)
	}
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected a not found error, got: %v", err)
	}
	if errors.Is(err, model.ErrUnavailable) {
		t.Errorf("an unknown league is not an outage, got: %v", err)
	}
	if l != nil {
		t.Errorf("league should have been nil")
	}
}

func TestSleeperRequest_nullNotCached(t *testing.T) {
	var requests atomic.Int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null\n"))
	}))
	defer s.Close()

	c := NewForTest(s.URL, WithCache(cache.NewMemory(clock.NewMock()), time.Hour))

	for i := 0; i < 2; i++ {
		if _, err := c.GetLeague(context.Background(), "typo"); !errors.Is(err, ErrLeagueNotFound) {
			t.Errorf("expected a league not found error, got: %v", err)
		}
		if _, err := c.GetUsers(context.Background(), "typo"); !errors.Is(err, model.ErrNotFound) {
			t.Errorf("expected a not found error, got: %v", err)
		}
	}
	if n := requests.Load(); n != 4 {
		t.Errorf("expected null responses to not be cached, got %d requests", n)
	}
}

func TestGetUsers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	users, err := c.GetUsers(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	expected := []model.User{
		{UserID: "u1", DisplayName: "alice", Avatar: "av1", TeamName: "Alpha Dogs"},
		{UserID: "u2", DisplayName: "bob"},
		{UserID: "u3", DisplayName: "carol", Avatar: "av3", TeamName: "Gamma Rays"},
		{UserID: "u4", DisplayName: "dave", Avatar: "av4"},
	}
	if !reflect.DeepEqual(users, expected) {
		t.Errorf("expected users %v, got %v", expected, users)
	}
}

func TestGetRosters(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	rosters, err := c.GetRosters(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	expected := []model.Roster{
		{RosterID: 1, OwnerID: "u1", PlayerIDs: []string{"6904", "2374", "9509"}, Wins: 2, Losses: 1},
		{RosterID: 2, OwnerID: "u2", PlayerIDs: []string{"4046", "7564"}, Wins: 1, Losses: 1, Ties: 1},
		{RosterID: 3, OwnerID: "u3", PlayerIDs: []string{"6786", "5844", "11632", "0000"}, Losses: 3},
		{RosterID: 4, PlayerIDs: []string{"8155"}, Wins: 2, Ties: 1},
	}
	if !reflect.DeepEqual(rosters, expected) {
		t.Errorf("expected rosters %v, got %v", expected, rosters)
	}
}

func TestGetMatchups(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	tests := map[string]struct {
		week     int
		expected map[int]float64 // roster id -> points
	}{
		"week 1":       {week: 1, expected: map[int]float64{1: 100.5, 2: 80.25, 3: 90, 4: 95}},
		"week 3":       {week: 3, expected: map[int]float64{1: 60, 4: 75, 2: 120.75, 3: 119.5}},
		"future week":  {week: 9, expected: map[int]float64{}},
		"no such week": {week: 20, expected: map[int]float64{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			matchups, err := c.GetMatchups(context.Background(), testutils.SleeperLeagueID, tc.week)
			if err != nil {
				t.Fatalf("error should have been nil, was: %v", err)
			}
			if len(matchups) != len(tc.expected) {
				t.Fatalf("expected %d matchups, got %d", len(tc.expected), len(matchups))
			}
			for _, m := range matchups {
				if m.Points != tc.expected[m.RosterID] {
					t.Errorf("expected roster %d to score %v, got %v", m.RosterID, tc.expected[m.RosterID], m.Points)
				}
				if m.MatchupID == 0 {
					t.Errorf("expected roster %d to have a matchup id", m.RosterID)
				}
			}
		})
	}
}

func TestGetMatchups_playersPoints(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	matchups, err := c.GetMatchups(context.Background(), testutils.SleeperLeagueID, 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	for _, m := range matchups {
		if m.RosterID != 3 {
			continue
		}
		expected := map[string]float64{"6786": 70, "5844": 20, "11632": 5.55}
		if !reflect.DeepEqual(m.PlayersPoints, expected) {
			t.Errorf("expected players points %v, got %v", expected, m.PlayersPoints)
		}
		return
	}
	t.Errorf("roster 3 not found in week 1 matchups")
}

func TestGetMatchups_serverError(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	matchups, err := c.GetMatchups(context.Background(), testutils.SleeperBrokenLeagueID, 5)
	if !errors.Is(err, model.ErrUnavailable) {
		t.Errorf("expected an unavailable error, got: %v", err)
	}
	if matchups != nil {
		t.Errorf("matchups should have been nil")
	}
}

func TestGetPlayers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	players, err := c.GetPlayers(context.Background())
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	tests := map[string]struct {
		id       string
		name     string
		position model.Position
		team     string
	}{
		"qb":     {id: "6904", name: "Jalen Hurts", position: model.POS_QB, team: "PHI"},
		"suffix": {id: "11632", name: "Marvin Harrison Jr.", position: model.POS_WR, team: "ARI"},
		"te":     {id: "5844", name: "T.J. Hockenson", position: model.POS_TE, team: "MIN"},
		"def":    {id: "SEA", name: "Seattle Seahawks", position: model.POS_DEF, team: "SEA"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, found := players[tc.id]
			if !found {
				t.Fatalf("expected player %s to be found", tc.id)
			}
			if p.ID != tc.id {
				t.Errorf("expected id %s, got %s", tc.id, p.ID)
			}
			if p.FullName() != tc.name {
				t.Errorf("expected name %s, got %s", tc.name, p.FullName())
			}
			if p.Position != tc.position {
				t.Errorf("expected position %s, got %s", tc.position, p.Position)
			}
			if p.Team != tc.team {
				t.Errorf("expected team %s, got %s", tc.team, p.Team)
			}
		})
	}
}

func TestGetPreviousDraftPicks(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	tests := map[string]struct {
		leagueID string
		userID   string
		expected []model.DraftPick
		wantErr  bool
	}{
		"single pick": {leagueID: testutils.SleeperPreviousLeagueID, userID: "u1", expected: []model.DraftPick{
			{PlayerID: "6904", PickedBy: "u1", Amount: "50"},
		}},
		"several picks": {leagueID: testutils.SleeperPreviousLeagueID, userID: "u2", expected: []model.DraftPick{
			{PlayerID: "2374", PickedBy: "u2", Amount: "15"},
			{PlayerID: "4046", PickedBy: "u2", Amount: "0"},
			{PlayerID: "7564", PickedBy: "u2", Amount: "15"},
		}},
		"null amount": {leagueID: testutils.SleeperPreviousLeagueID, userID: "u3", expected: []model.DraftPick{
			{PlayerID: "6786", PickedBy: "u3"},
		}},
		"no picks":       {leagueID: testutils.SleeperPreviousLeagueID, userID: "u4", expected: []model.DraftPick{}},
		"no drafts":      {leagueID: testutils.SleeperLeagueID, userID: "u1", expected: []model.DraftPick{}},
		"unknown league": {leagueID: "404", userID: "u1", wantErr: true},
		"every pick":     {leagueID: testutils.SleeperPreviousLeagueID, userID: "", expected: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			picks, err := c.GetPreviousDraftPicks(context.Background(), tc.leagueID, tc.userID)
			if tc.wantErr {
				if !errors.Is(err, model.ErrNotFound) {
					t.Errorf("expected a not found error, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("error should have been nil, was: %v", err)
			}
			if tc.expected == nil {
				if len(picks) != 5 {
					t.Errorf("expected all 5 picks of the latest draft, got %d", len(picks))
				}
				return
			}
			if !reflect.DeepEqual(picks, tc.expected) {
				t.Errorf("expected picks %v, got %v", tc.expected, picks)
			}
		})
	}
}

func TestSleeperRequest_cached(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	var requests atomic.Int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Redirect(w, r, fakeSleeper.URL()+r.URL.Path, http.StatusFound)
	}))
	defer s.Close()

	clk := clock.NewMock()
	c := NewForTest(s.URL, WithCache(cache.NewMemory(clk), time.Hour))

	for i := 0; i < 3; i++ {
		users, err := c.GetUsers(context.Background(), testutils.SleeperLeagueID)
		if err != nil {
			t.Fatalf("error should have been nil, was: %v", err)
		}
		if len(users) != 4 {
			t.Errorf("expected 4 users, got %d", len(users))
		}
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("expected 1 request to sleeper, got %d", n)
	}

	// different paths are cached separately
	if _, err := c.GetRosters(context.Background(), testutils.SleeperLeagueID); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if n := requests.Load(); n != 2 {
		t.Errorf("expected 2 requests to sleeper, got %d", n)
	}

	clk.Add(time.Hour)
	if _, err := c.GetUsers(context.Background(), testutils.SleeperLeagueID); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if n := requests.Load(); n != 3 {
		t.Errorf("expected the expired entry to be refreshed, got %d requests", n)
	}

	// a refresh skips the cached value and stores the new one
	if _, err := c.GetUsers(cache.WithRefresh(context.Background()), testutils.SleeperLeagueID); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if n := requests.Load(); n != 4 {
		t.Errorf("expected a refresh to go to sleeper, got %d requests", n)
	}
	if _, err := c.GetUsers(context.Background(), testutils.SleeperLeagueID); err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if n := requests.Load(); n != 4 {
		t.Errorf("expected the refreshed value to be cached, got %d requests", n)
	}
}

func TestSleeperRequest_errorsNotCached(t *testing.T) {
	var requests atomic.Int32
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer s.Close()

	c := NewForTest(s.URL, WithCache(cache.NewMemory(clock.NewMock()), time.Hour))

	for i := 0; i < 2; i++ {
		if _, err := c.GetRosters(context.Background(), "1"); !errors.Is(err, model.ErrUnavailable) {
			t.Errorf("expected an unavailable error, got: %v", err)
		}
	}
	if n := requests.Load(); n != 2 {
		t.Errorf("expected failed responses to not be cached, got %d requests", n)
	}
}

func TestLenientDecoding(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{"roster_id": "1", "matchup_id": null, "points": "88.5", "players_points": {"1": "bad"}},
			{"roster_id": 2, "matchup_id": 3, "points": null},
			{"roster_id": 3, "matchup_id": 3, "points": "NaN", "players_points": {"1": "Infinity", "2": "-Inf", "3": 1e999}},
			{"roster_id": 4, "matchup_id": 4, "points": "1e999"}
		]`))
	}))
	defer s.Close()

	c := NewForTest(s.URL)
	matchups, err := c.GetMatchups(context.Background(), "1", 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	expected := []model.Matchup{
		{RosterID: 1, MatchupID: 0, Points: 88.5, PlayersPoints: map[string]float64{"1": 0}},
		{RosterID: 2, MatchupID: 3, Points: 0, PlayersPoints: map[string]float64{}},
		{RosterID: 3, MatchupID: 3, Points: 0, PlayersPoints: map[string]float64{"1": 0, "2": 0, "3": 0}},
		{RosterID: 4, MatchupID: 4, Points: 0, PlayersPoints: map[string]float64{}},
	}
	if !reflect.DeepEqual(matchups, expected) {
		t.Errorf("expected matchups %v, got %v", expected, matchups)
	}
}
