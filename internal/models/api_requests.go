package models

// PredictRequest is a single raw record submitted for an auction value
// estimate. Walk and ride distance are accepted separately; the model
// only sees their sum unless an explicit distance is given.
type PredictRequest struct {
	PlayerID      string   `json:"player_id"`
	MatchesPlayed float64  `json:"matches_played" validate:"gte=0"`
	Kills         float64  `json:"kills" validate:"gte=0"`
	Assists       float64  `json:"assists" validate:"gte=0"`
	Damage        float64  `json:"damage" validate:"gte=0"`
	Headshots     float64  `json:"headshots" validate:"gte=0"`
	Revives       float64  `json:"revives" validate:"gte=0"`
	SurvivalTime  float64  `json:"survival_time" validate:"gte=0"`
	Distance      *float64 `json:"distance" validate:"omitempty,gte=0"`
	WalkDistance  float64  `json:"walk_distance" validate:"gte=0"`
	RideDistance  float64  `json:"ride_distance" validate:"gte=0"`
}

// Values flattens the request into the named-field form the predictor takes.
// "distance" is only present when the caller sent it.
func (r *PredictRequest) Values() map[string]float64 {
	values := map[string]float64{
		"matches_played": r.MatchesPlayed,
		"kills":          r.Kills,
		"assists":        r.Assists,
		"damage":         r.Damage,
		"headshots":      r.Headshots,
		"revives":        r.Revives,
		"survival_time":  r.SurvivalTime,
		"walk_distance":  r.WalkDistance,
		"ride_distance":  r.RideDistance,
	}
	if r.Distance != nil {
		values["distance"] = *r.Distance
	}
	return values
}

// PredictRequestFromRow builds the request the profile view sends for a
// stored player: the stored distance is treated as walking distance.
func PredictRequestFromRow(row *FeatureRow) *PredictRequest {
	return &PredictRequest{
		PlayerID:      row.PlayerName,
		MatchesPlayed: row.MatchesPlayed,
		Kills:         row.Kills,
		Assists:       row.Assists,
		Damage:        row.Damage,
		Headshots:     row.Headshots,
		Revives:       row.Revives,
		SurvivalTime:  row.SurvivalTime,
		WalkDistance:  row.Distance,
		RideDistance:  0,
	}
}
