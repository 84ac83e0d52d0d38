package sleeper

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dereckquock/keepers/model"
)

// number decodes a JSON number, a numeric string or null. Anything that cannot
// be parsed, including NaN and infinities, is treated as 0 because partial
// weekly data is common mid-season.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	*n = 0
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = number(f)
	return nil
}

// text decodes a JSON string, a bare number or null into a string.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	*t = ""
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	*t = text(b)
	return nil
}

type sleeperLeague struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Season   string `json:"season"`
}

func (l *sleeperLeague) toLeague() *model.League {
	return &model.League{
		LeagueID: l.LeagueID,
		Name:     l.Name,
		Avatar:   l.Avatar,
		Season:   l.Season,
	}
}

type sleeperUser struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Avatar      string        `json:"avatar"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

func (u *sleeperUser) toUser() model.User {
	user := model.User{
		UserID:      u.UserID,
		DisplayName: u.DisplayName,
		Avatar:      u.Avatar,
	}
	if u.Metadata != nil {
		user.TeamName = strings.TrimSpace(u.Metadata.TeamName)
	}
	return user
}

type sleeperRoster struct {
	RosterID number          `json:"roster_id"`
	OwnerID  string          `json:"owner_id"`
	Players  []string        `json:"players"`
	Settings *rosterSettings `json:"settings"`
}

type rosterSettings struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

func (r *sleeperRoster) toRoster() model.Roster {
	roster := model.Roster{
		RosterID:  int(r.RosterID),
		OwnerID:   r.OwnerID,
		PlayerIDs: r.Players,
	}
	if r.Settings != nil {
		roster.Wins = r.Settings.Wins
		roster.Losses = r.Settings.Losses
		roster.Ties = r.Settings.Ties
	}
	return roster
}

type sleeperMatchup struct {
	RosterID      number            `json:"roster_id"`
	MatchupID     number            `json:"matchup_id"`
	Points        number            `json:"points"`
	PlayersPoints map[string]number `json:"players_points"`
	Starters      []string          `json:"starters"`
}

func (m *sleeperMatchup) toMatchup() model.Matchup {
	pp := make(map[string]float64, len(m.PlayersPoints))
	for id, p := range m.PlayersPoints {
		pp[id] = float64(p)
	}
	return model.Matchup{
		RosterID:      int(m.RosterID),
		MatchupID:     int(m.MatchupID),
		Points:        float64(m.Points),
		PlayersPoints: pp,
		Starters:      m.Starters,
	}
}

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Active    bool   `json:"active"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
		Active:    p.Active,
	}
}

type sleeperDraft struct {
	DraftID string `json:"draft_id"`
	Season  string `json:"season"`
	Status  string `json:"status"`
}

type sleeperDraftPick struct {
	PlayerID string        `json:"player_id"`
	PickedBy string        `json:"picked_by"`
	Metadata *pickMetadata `json:"metadata"`
}

type pickMetadata struct {
	Amount text `json:"amount"`
}

func (p *sleeperDraftPick) toDraftPick() model.DraftPick {
	pick := model.DraftPick{
		PlayerID: p.PlayerID,
		PickedBy: p.PickedBy,
	}
	if p.Metadata != nil {
		pick.Amount = strings.TrimSpace(string(p.Metadata.Amount))
	}
	return pick
}
