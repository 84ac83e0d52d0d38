package model

import "fmt"

const avatarThumbURL = "https://sleepercdn.com/avatars/thumbs"

// RegularSeasonWeeks is the number of weeks, starting at week 1, that make up
// the regular season window used by every season aggregation.
const RegularSeasonWeeks = 14

type League struct {
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	Avatar   string `json:"-"`
	Season   string `json:"season"`
}

func (l *League) AvatarURL() string {
	return AvatarURL(l.Avatar)
}

type User struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"-"`
	TeamName    string `json:"teamName,omitempty"`
}

func (u *User) AvatarURL() string {
	return AvatarURL(u.Avatar)
}

// Roster is a team slot within a league. OwnerID is empty for orphaned rosters.
type Roster struct {
	RosterID  int
	OwnerID   string
	PlayerIDs []string
	Wins      int
	Losses    int
	Ties      int
}

func (r *Roster) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// Matchup is one roster's scoring record for a single week. Rosters that share
// a MatchupID within the same week played each other. A MatchupID of 0 means
// the roster had no opponent that week.
type Matchup struct {
	RosterID      int
	MatchupID     int
	Points        float64
	PlayersPoints map[string]float64
	Starters      []string
}

// DraftPick is one auction result. Amount is the raw amount reported by the
// platform and may be empty for snake drafts.
type DraftPick struct {
	PlayerID string
	PickedBy string
	Amount   string
}

// AvatarURL returns the thumbnail url for a sleeper avatar id, or "" if there
// is no avatar.
func AvatarURL(avatar string) string {
	if avatar == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", avatarThumbURL, avatar)
}
