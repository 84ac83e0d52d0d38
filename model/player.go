package model

import (
	"strings"
)

// UnknownPlayerName is displayed for rostered players that are missing from
// the players list.
const UnknownPlayerName = "🏈"

type Player struct {
	ID        string   `json:"playerId"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Position  Position `json:"position"`
	Team      string   `json:"team"`
	Active    bool     `json:"active"`
}

// FullName is "First Last" with any missing part dropped.
func (p *Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p *Player) FormattedTeam() string {
	if p.Team == "" {
		return "FA"
	}
	return p.Team
}

// Take a full name, like "Deebo Samuel Sr."" and return "Deebo Samuel".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{
		"Jr.",
		"Sr.",
		"III",
		"II",
		"IV",
		"V",
	}

	fullName = strings.TrimSpace(fullName)
	for _, s := range suffixList {
		if strings.HasSuffix(fullName, " "+s) {
			fullName = strings.TrimSuffix(fullName, s)
			break
		}
	}

	return strings.TrimSpace(fullName)
}
