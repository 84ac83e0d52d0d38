package controller

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dereckquock/keepers/model"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSearchResults = 25

func (c *controller) SearchPlayers(ctx context.Context, query string) ([]model.Player, error) {
	q, pos := getPositionFromQuery(query)
	q, team := getTeamFromQuery(q)

	if pos == model.POS_UNKNOWN && team == nil && q == "" {
		return nil, fmt.Errorf("%w: not a valid query: '%s'", model.ErrInvalidArgument, query)
	}

	players, err := c.sleeper.GetPlayers(ctx)
	if err != nil {
		return nil, unavailable(err)
	}

	candidates := make([]model.Player, 0, len(players))
	for _, p := range players {
		if pos != model.POS_UNKNOWN && p.Position != pos {
			continue
		}
		if team != nil && p.Team != team.Abbrev {
			continue
		}
		candidates = append(candidates, p)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].FullName() != candidates[j].FullName() {
			return candidates[i].FullName() < candidates[j].FullName()
		}
		return candidates[i].ID < candidates[j].ID
	})

	if q == "" {
		return candidates[:min(len(candidates), maxSearchResults)], nil
	}

	names := make([]string, len(candidates))
	for i, p := range candidates {
		names[i] = p.FullName()
	}
	ranks := fuzzy.RankFindFold(q, names)
	sort.Stable(ranks)

	results := make([]model.Player, 0, min(len(ranks), maxSearchResults))
	for _, r := range ranks {
		if len(results) == maxSearchResults {
			break
		}
		results = append(results, candidates[r.OriginalIndex])
	}
	return results, nil
}

var positionRegex = regexp.MustCompile(`(?i)(pos|position)\s*:\s*(?P<pos>\w+)`)

// Parse out the position from the query, returning the same query without the position.
// So if the query is "Tom pos:QB" this will return "Tom" and model.POS_QB.
// If the input query does not have a `pos:` argument then the function will return the
// input string and model.POS_UNKNOWN.
func getPositionFromQuery(q string) (string, model.Position) {
	pos := model.POS_UNKNOWN
	m := positionRegex.FindStringSubmatch(q)
	if m != nil {
		p := m[positionRegex.SubexpIndex("pos")]
		pos = model.ParsePosition(p)
		q = strings.Replace(q, m[0], "", 1)
	}

	return strings.TrimSpace(q), pos
}

var teamRegex = regexp.MustCompile(`(?i)team\s*:\s*(?P<team>\w+)`)

// Parse out the team from the query, returning the same query without the team.
// So if the query is "Brown team:PHI" this will return "Brown" and model.TEAM_PHI.
// Unknown teams are dropped from the query and nil is returned.
func getTeamFromQuery(q string) (string, *model.Team) {
	var team *model.Team
	m := teamRegex.FindStringSubmatch(q)
	if m != nil {
		team = model.ParseTeam(m[teamRegex.SubexpIndex("team")])
		q = strings.Replace(q, m[0], "", 1)
	}

	return strings.TrimSpace(q), team
}
