package model

import (
	"fmt"
	"strings"
)

// Team is an NFL team as abbreviated by sleeper.
type Team struct {
	Abbrev   string
	Location string
	Mascot   string
	aliases  []string // e.g. Philly for PHI
}

func (t *Team) String() string {
	return t.Abbrev
}

func (t *Team) Friendly() string {
	if t.Location == "" {
		return t.Abbrev
	}
	return fmt.Sprintf("%s %s", t.Location, t.Mascot)
}

var (
	// NFC
	TEAM_ARI = &Team{Abbrev: "ARI", Location: "Arizona", Mascot: "Cardinals", aliases: []string{"Cards"}}
	TEAM_ATL = &Team{Abbrev: "ATL", Location: "Atlanta", Mascot: "Falcons"}
	TEAM_CAR = &Team{Abbrev: "CAR", Location: "Carolina", Mascot: "Panthers"}
	TEAM_CHI = &Team{Abbrev: "CHI", Location: "Chicago", Mascot: "Bears"}
	TEAM_DAL = &Team{Abbrev: "DAL", Location: "Dallas", Mascot: "Cowboys"}
	TEAM_DET = &Team{Abbrev: "DET", Location: "Detroit", Mascot: "Lions"}
	TEAM_GB  = &Team{Abbrev: "GB", Location: "Green Bay", Mascot: "Packers", aliases: []string{"GBP"}}
	TEAM_LAR = &Team{Abbrev: "LAR", Location: "Los Angeles", Mascot: "Rams"}
	TEAM_MIN = &Team{Abbrev: "MIN", Location: "Minnesota", Mascot: "Vikings"}
	TEAM_NO  = &Team{Abbrev: "NO", Location: "New Orleans", Mascot: "Saints", aliases: []string{"NOS"}}
	TEAM_NYG = &Team{Abbrev: "NYG", Location: "New York", Mascot: "Giants"}
	TEAM_PHI = &Team{Abbrev: "PHI", Location: "Philadelphia", Mascot: "Eagles", aliases: []string{"Philly"}}
	TEAM_SF  = &Team{Abbrev: "SF", Location: "San Francisco", Mascot: "49ers", aliases: []string{"SFO", "Niners"}}
	TEAM_SEA = &Team{Abbrev: "SEA", Location: "Seattle", Mascot: "Seahawks", aliases: []string{"Hawks"}}
	TEAM_TB  = &Team{Abbrev: "TB", Location: "Tampa Bay", Mascot: "Buccaneers", aliases: []string{"TBB", "Bucs"}}
	TEAM_WAS = &Team{Abbrev: "WAS", Location: "Washington", Mascot: "Commanders"}

	// AFC
	TEAM_BAL = &Team{Abbrev: "BAL", Location: "Baltimore", Mascot: "Ravens"}
	TEAM_BUF = &Team{Abbrev: "BUF", Location: "Buffalo", Mascot: "Bills"}
	TEAM_CIN = &Team{Abbrev: "CIN", Location: "Cincinnati", Mascot: "Bengals"}
	TEAM_CLE = &Team{Abbrev: "CLE", Location: "Cleveland", Mascot: "Browns"}
	TEAM_DEN = &Team{Abbrev: "DEN", Location: "Denver", Mascot: "Broncos"}
	TEAM_HOU = &Team{Abbrev: "HOU", Location: "Houston", Mascot: "Texans"}
	TEAM_IND = &Team{Abbrev: "IND", Location: "Indianapolis", Mascot: "Colts", aliases: []string{"Indy"}}
	TEAM_JAX = &Team{Abbrev: "JAX", Location: "Jacksonville", Mascot: "Jaguars", aliases: []string{"JAC", "Jags"}}
	TEAM_KC  = &Team{Abbrev: "KC", Location: "Kansas City", Mascot: "Chiefs", aliases: []string{"KCC"}}
	TEAM_LV  = &Team{Abbrev: "LV", Location: "Las Vegas", Mascot: "Raiders", aliases: []string{"LVR"}}
	TEAM_LAC = &Team{Abbrev: "LAC", Location: "Los Angeles", Mascot: "Chargers"}
	TEAM_MIA = &Team{Abbrev: "MIA", Location: "Miami", Mascot: "Dolphins"}
	TEAM_NE  = &Team{Abbrev: "NE", Location: "New England", Mascot: "Patriots", aliases: []string{"NEP", "Pats"}}
	TEAM_NYJ = &Team{Abbrev: "NYJ", Location: "New York", Mascot: "Jets"}
	TEAM_PIT = &Team{Abbrev: "PIT", Location: "Pittsburgh", Mascot: "Steelers"}
	TEAM_TEN = &Team{Abbrev: "TEN", Location: "Tennessee", Mascot: "Titans"}

	teams = buildTeamIndex()
)

// ParseTeam finds a team by abbreviation, mascot or alias, case insensitive.
// Locations shared by two teams, like "New York", only match by mascot.
// Returns nil if nothing matches.
func ParseTeam(name string) *Team {
	return teams[strings.ToLower(strings.TrimSpace(name))]
}

func buildTeamIndex() map[string]*Team {
	all := []*Team{
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GB, TEAM_LAR,
		TEAM_MIN, TEAM_NO, TEAM_NYG, TEAM_PHI, TEAM_SF, TEAM_SEA, TEAM_TB, TEAM_WAS,
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAX,
		TEAM_KC, TEAM_LV, TEAM_LAC, TEAM_MIA, TEAM_NE, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
	}

	locations := make(map[string]int)
	for _, t := range all {
		locations[strings.ToLower(t.Location)]++
	}

	index := make(map[string]*Team)
	for _, t := range all {
		index[strings.ToLower(t.Abbrev)] = t
		index[strings.ToLower(t.Mascot)] = t
		if loc := strings.ToLower(t.Location); locations[loc] == 1 {
			index[loc] = t
		}
		for _, a := range t.aliases {
			index[strings.ToLower(a)] = t
		}
	}
	return index
}
