package models

// LeaderboardEntry is one ranked row of the WPI leaderboard
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	WPI      float64 `json:"wpi"` // rounded to 2 decimals
	Kills    int64   `json:"kills"`
	Damage   int64   `json:"damage"`
	Matches  int64   `json:"matches"`
}

// LeaderboardPage is a paginated slice of the leaderboard
type LeaderboardPage struct {
	Players []LeaderboardEntry `json:"players"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
}

// ComparisonStat is one line of a head-to-head table
type ComparisonStat struct {
	Name    string  `json:"name"`
	Player1 float64 `json:"player1"`
	Player2 float64 `json:"player2"`
}

// Comparison is a head-to-head view of two players in requested order.
// Player1/Player2 are nil and Stats is empty when either name was not given.
type Comparison struct {
	P1      string           `json:"p1"`
	P2      string           `json:"p2"`
	Player1 *FeatureRow      `json:"r1"`
	Player2 *FeatureRow      `json:"r2"`
	Stats   []ComparisonStat `json:"stats"`
}
