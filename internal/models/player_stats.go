package models

// PlayerRecord is one row of the processed player table
type PlayerRecord struct {
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	MatchesPlayed float64 `json:"matches_played"`
	Kills         float64 `json:"kills"`
	Deaths        float64 `json:"deaths"`
	Assists       float64 `json:"assists"`
	Damage        float64 `json:"damage"`
	Headshots     float64 `json:"headshots"`
	Wins          float64 `json:"wins"`
	Top10s        float64 `json:"top10s"`
	Revives       float64 `json:"revives"`
	Distance      float64 `json:"distance"`
	WeaponsUsed   float64 `json:"weapons_used"`
	SurvivalTime  float64 `json:"survival_time"`
	Rank          float64 `json:"rank"`
}

// FeatureRow is a PlayerRecord plus its derived rates and composite scores.
// It is computed per request and never stored.
type FeatureRow struct {
	PlayerRecord

	// Per-match rates
	KillsPerMatch    float64 `json:"kills_per_match"`
	AssistsPerMatch  float64 `json:"assists_per_match"`
	DamagePerMatch   float64 `json:"damage_per_match"`
	RevivesPerMatch  float64 `json:"revives_per_match"`
	SurvivalPerMatch float64 `json:"survival_per_match"`
	MovementPerMatch float64 `json:"movement_per_match"`
	HeadshotRate     float64 `json:"headshot_rate"`

	// Composite scores
	AggressionScore float64 `json:"aggression_score"`
	SupportScore    float64 `json:"support_score"`
	SurvivalScore   float64 `json:"survival_score"`
	WPI             float64 `json:"wpi"`
	AuctionValue    float64 `json:"auction_value"`
}

// Metric returns a numeric field by its snake_case name.
// Unknown names yield 0 so display views never fail on a missing field.
func (f *FeatureRow) Metric(name string) float64 {
	v, _ := f.lookup(name)
	return v
}

// Vector returns the named fields in order. Unlike Metric it fails on
// unknown names, since a model input with a silently zeroed column is wrong.
func (f *FeatureRow) Vector(names []string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, ok := f.lookup(name)
		if !ok {
			return nil, &UnknownFeatureError{Name: name}
		}
		out[i] = v
	}
	return out, nil
}

func (f *FeatureRow) lookup(name string) (float64, bool) {
	switch name {
	case "matches_played":
		return f.MatchesPlayed, true
	case "kills":
		return f.Kills, true
	case "deaths":
		return f.Deaths, true
	case "assists":
		return f.Assists, true
	case "damage":
		return f.Damage, true
	case "headshots":
		return f.Headshots, true
	case "wins":
		return f.Wins, true
	case "top10s":
		return f.Top10s, true
	case "revives":
		return f.Revives, true
	case "distance":
		return f.Distance, true
	case "weapons_used":
		return f.WeaponsUsed, true
	case "survival_time":
		return f.SurvivalTime, true
	case "rank":
		return f.Rank, true
	case "kills_per_match":
		return f.KillsPerMatch, true
	case "assists_per_match":
		return f.AssistsPerMatch, true
	case "damage_per_match":
		return f.DamagePerMatch, true
	case "revives_per_match":
		return f.RevivesPerMatch, true
	case "survival_per_match":
		return f.SurvivalPerMatch, true
	case "movement_per_match":
		return f.MovementPerMatch, true
	case "headshot_rate":
		return f.HeadshotRate, true
	case "aggression_score":
		return f.AggressionScore, true
	case "support_score":
		return f.SupportScore, true
	case "survival_score":
		return f.SurvivalScore, true
	case "wpi":
		return f.WPI, true
	case "auction_value":
		return f.AuctionValue, true
	}
	return 0, false
}

// UnknownFeatureError is returned by Vector for a name FeatureRow does not carry
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return "unknown feature: " + e.Name
}

// ChartSeries is a labelled series ready for a bar or radar chart
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// PlayerProfile is the single-player view
type PlayerProfile struct {
	Player       FeatureRow  `json:"player"`
	Prediction   *float64    `json:"prediction"` // nil when no model is available
	AuctionValue float64     `json:"auction_value"`
	BarChart     ChartSeries `json:"bar_chart"`
	RadarChart   ChartSeries `json:"radar_chart"`
	Tips         []string    `json:"tips"`
}
