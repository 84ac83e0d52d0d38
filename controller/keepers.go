package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dereckquock/keepers/model"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var keeperInflation = decimal.RequireFromString(model.KeeperInflation)

// maxBaseCost caps the base cost well above any real auction budget so the
// inflated cost always fits in an int.
const maxBaseCost = 1_000_000

// ComputeKeeperCost returns what it costs to keep a player next season. The
// base cost is what the player went for in last season's draft, or the current
// market value when the player was not drafted or went for nothing. Players
// with no known value cost 1 before inflation, so every keeper costs at least 2.
func ComputeKeeperCost(playerName, playerID string, picks []model.DraftPick, marketValues map[string]int) int {
	cost, _ := keeperCost(playerName, playerID, picks, marketValues)
	return cost
}

func keeperCost(playerName, playerID string, picks []model.DraftPick, marketValues map[string]int) (int, model.CostSource) {
	base, source := keeperBaseCost(playerName, playerID, picks, marketValues)
	base = min(max(base, 1), maxBaseCost)
	return int(decimal.NewFromInt(int64(base)).Mul(keeperInflation).Ceil().IntPart()), source
}

func keeperBaseCost(playerName, playerID string, picks []model.DraftPick, marketValues map[string]int) (int, model.CostSource) {
	for _, p := range picks {
		if p.PlayerID != playerID {
			continue
		}
		if amount := parseAmount(p.Amount); amount != 0 {
			return amount, model.CostFromDraft
		}
		break
	}

	if v := marketValues[playerName]; v != 0 {
		return v, model.CostFromMarket
	}
	// market values are listed without name suffixes
	if v := marketValues[model.TrimNameSuffix(playerName)]; v != 0 {
		return v, model.CostFromMarket
	}
	return 1, model.CostFromDefault
}

// parseAmount reads the integer at the start of a draft amount, so "12.5"
// is 12. Anything that does not start with a number is 0, and amounts past the
// range of an int saturate.
func parseAmount(amount string) int {
	amount = strings.TrimSpace(amount)

	end := 0
	if end < len(amount) && (amount[end] == '-' || amount[end] == '+') {
		end++
	}
	digits := end
	for end < len(amount) && amount[end] >= '0' && amount[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(amount[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return n
}

func (c *controller) MarketValues(ctx context.Context) (map[string]int, error) {
	values, err := c.fantasyPros.LoadMarketValues(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return values, nil
}

func (c *controller) KeeperCosts(ctx context.Context, previousLeagueID, currentLeagueID string) ([]model.KeeperTeam, error) {
	if previousLeagueID == "" || currentLeagueID == "" {
		return nil, fmt.Errorf("%w: previous and current league ids are required", model.ErrInvalidArgument)
	}

	g, gctx := errgroup.WithContext(ctx)

	var users []model.User
	var rosters []model.Roster
	var players map[string]model.Player
	var values map[string]int
	g.Go(func() error {
		var err error
		users, err = c.sleeper.GetUsers(gctx, currentLeagueID)
		return err
	})
	g.Go(func() error {
		var err error
		rosters, err = c.sleeper.GetRosters(gctx, currentLeagueID)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = c.sleeper.GetPlayers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		values, err = c.fantasyPros.LoadMarketValues(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading keepers for league %s: %w", currentLeagueID, unavailable(err))
	}

	picks := make([][]model.DraftPick, len(users))
	g, gctx = errgroup.WithContext(ctx)
	for i, u := range users {
		g.Go(func() error {
			p, err := c.sleeper.GetPreviousDraftPicks(gctx, previousLeagueID, u.UserID)
			if err != nil {
				return err
			}
			picks[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error loading draft results for league %s: %w", previousLeagueID, unavailable(err))
	}

	teams := make([]model.KeeperTeam, 0, len(users))
	for i, u := range users {
		team := model.KeeperTeam{
			User:    u,
			Players: []model.KeeperPlayer{},
		}

		for _, r := range rosters {
			if r.OwnerID != u.UserID {
				continue
			}
			for _, id := range r.PlayerIDs {
				team.Players = append(team.Players, keeperPlayer(id, players, picks[i], values))
			}
			break
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func keeperPlayer(playerID string, players map[string]model.Player, picks []model.DraftPick, values map[string]int) model.KeeperPlayer {
	kp := model.KeeperPlayer{
		PlayerID: playerID,
		Name:     model.UnknownPlayerName,
	}
	if p, found := players[playerID]; found {
		if name := p.FullName(); name != "" {
			kp.Name = name
		}
		kp.Position = p.Position
		kp.Team = p.Team
	}
	kp.Cost, kp.CostSource = keeperCost(kp.Name, playerID, picks, values)
	return kp
}
