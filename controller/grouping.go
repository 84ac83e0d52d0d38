package controller

import "github.com/dereckquock/keepers/model"

// MatchupGroup is every roster that played in the same matchup during a week.
type MatchupGroup struct {
	MatchupID int
	Matchups  []model.Matchup
}

// winner returns the roster that scored strictly more than every other roster
// in the group along with the lowest score of the group. Groups of fewer than
// two rosters and groups where the top score is tied have no winner.
func (g *MatchupGroup) winner() (winner model.Matchup, low float64, ok bool) {
	if len(g.Matchups) < 2 {
		return model.Matchup{}, 0, false
	}

	winners := 0
	for i, m := range g.Matchups {
		if i == 0 || m.Points > winner.Points {
			winner = m
			winners = 1
		} else if m.Points == winner.Points {
			winners++
		}
		if i == 0 || m.Points < low {
			low = m.Points
		}
	}

	if winners != 1 {
		return model.Matchup{}, 0, false
	}
	return winner, low, true
}

func (g *MatchupGroup) totalPoints() float64 {
	total := 0.0
	for _, m := range g.Matchups {
		total += m.Points
	}
	return total
}

// GroupMatchups groups a week of matchup records by matchup id. Groups are
// returned in the order their first record appears and keep the order of
// their records. Records without a matchup id, usually byes, each get a group
// of their own.
func GroupMatchups(week []model.Matchup) []MatchupGroup {
	groups := make([]MatchupGroup, 0, len(week))
	index := make(map[int]int)

	for _, m := range week {
		if m.MatchupID == 0 {
			groups = append(groups, MatchupGroup{Matchups: []model.Matchup{m}})
			continue
		}

		if i, found := index[m.MatchupID]; found {
			groups[i].Matchups = append(groups[i].Matchups, m)
			continue
		}
		index[m.MatchupID] = len(groups)
		groups = append(groups, MatchupGroup{MatchupID: m.MatchupID, Matchups: []model.Matchup{m}})
	}

	return groups
}
