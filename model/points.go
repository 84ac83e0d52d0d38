package model

import "github.com/shopspring/decimal"

// RosterPoints splits one roster's weekly points between the starters and the
// bench.
type RosterPoints struct {
	RosterID      int     `json:"rosterId"`
	UserID        string  `json:"userId,omitempty"`
	DisplayName   string  `json:"displayName,omitempty"`
	AvatarURL     string  `json:"avatarUrl,omitempty"`
	StarterPoints float64 `json:"points"`
	BenchPoints   float64 `json:"benchPoints"`
}

// TotalPoints is the points scored by every rostered player.
func (r *RosterPoints) TotalPoints() float64 {
	return decimal.NewFromFloat(r.StarterPoints).Add(decimal.NewFromFloat(r.BenchPoints)).InexactFloat64()
}

type PointsReport struct {
	LeagueID string         `json:"leagueId"`
	Week     int            `json:"weekNumber"`
	Starters []RosterPoints `json:"starters"`
	Benches  []RosterPoints `json:"benches"`
}
