package model

// SeasonLeader identifies the user that holds a season record.
type SeasonLeader struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	TeamName    string `json:"teamName,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

func NewSeasonLeader(u *User) SeasonLeader {
	return SeasonLeader{
		UserID:      u.UserID,
		DisplayName: u.DisplayName,
		TeamName:    u.TeamName,
		AvatarURL:   u.AvatarURL(),
	}
}

type TopScorer struct {
	SeasonLeader
	Points float64 `json:"points"`
}

type WeeklyTopScorer struct {
	SeasonLeader
	Points float64 `json:"points"`
	Week   int     `json:"weekNumber"`
}

type WinStreak struct {
	SeasonLeader
	Streak int `json:"streak"`
}

// MatchupMargin describes a single decisive matchup, used for both the biggest
// blowout and the closest win of the season.
type MatchupMargin struct {
	SeasonLeader
	Week         int     `json:"weekNumber"`
	WinnerPoints float64 `json:"winnerPoints"`
	LoserPoints  float64 `json:"loserPoints"`
	Margin       float64 `json:"margin"`
}

type ScheduleStrength struct {
	SeasonLeader
	PointsAgainst float64 `json:"pointsAgainst"`
}

// SeasonSummary holds every season record for a league. A nil record means
// there is no qualifying data for it yet.
type SeasonSummary struct {
	League           *League           `json:"league,omitempty"`
	TopScorer        *TopScorer        `json:"topScorer"`
	WeeklyTopScorer  *WeeklyTopScorer  `json:"topWeeklyScorer"`
	LongestWinStreak *WinStreak        `json:"longestWinStreak"`
	BiggestBlowout   *MatchupMargin    `json:"biggestBlowout"`
	ClosestWin       *MatchupMargin    `json:"closestWin"`
	HardestSchedule  *ScheduleStrength `json:"hardestSchedule"`
	EasiestSchedule  *ScheduleStrength `json:"easiestSchedule"`
}
