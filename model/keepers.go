package model

// KeeperInflation is the season over season increase applied to a keeper's
// base cost.
const KeeperInflation = "1.4"

type CostSource string

const (
	CostFromDraft   CostSource = "draft"
	CostFromMarket  CostSource = "market"
	CostFromDefault CostSource = "default"
)

type KeeperPlayer struct {
	PlayerID   string     `json:"playerId"`
	Name       string     `json:"name"`
	Position   Position   `json:"position,omitempty"`
	Team       string     `json:"team,omitempty"`
	Cost       int        `json:"cost"`
	CostSource CostSource `json:"costSource"`
}

type KeeperTeam struct {
	User    User           `json:"user"`
	Players []KeeperPlayer `json:"players"`
}

func (t *KeeperTeam) AvatarURL() string {
	return t.User.AvatarURL()
}
