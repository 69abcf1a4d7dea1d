package logic

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/squadstats/wpi-api/internal/models"
)

// ErrPlayerNotFound matches every PlayerNotFoundError via errors.Is
var ErrPlayerNotFound = errors.New("player not found")

// PlayerNotFoundError lists the requested names that had no row
type PlayerNotFoundError struct {
	Names []string
}

func (e *PlayerNotFoundError) Error() string {
	return "player not found: " + strings.Join(e.Names, ", ")
}

func (e *PlayerNotFoundError) Is(target error) bool {
	return target == ErrPlayerNotFound
}

// ComparisonStats are the fields shown in a head-to-head view
var ComparisonStats = []string{
	"kills_per_match",
	"assists_per_match",
	"damage_per_match",
	"survival_per_match",
	"movement_per_match",
	"aggression_score",
	"support_score",
	"survival_score",
	"wpi",
}

// FindByName returns the first row whose display name equals name,
// ignoring case. Names are not unique in the source data.
func FindByName(rows []models.FeatureRow, name string) (*models.FeatureRow, error) {
	if i := indexByName(rows, name); i >= 0 {
		return &rows[i], nil
	}
	return nil, &PlayerNotFoundError{Names: []string{name}}
}

func indexByName(rows []models.FeatureRow, name string) int {
	want := strings.ToLower(name)
	for i := range rows {
		if strings.ToLower(rows[i].PlayerName) == want {
			return i
		}
	}
	return -1
}

// Rank returns the rows sorted by WPI, highest first. Equal WPIs keep
// their table order. The input slice is not modified.
func Rank(rows []models.FeatureRow) []models.FeatureRow {
	ranked := append([]models.FeatureRow(nil), rows...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WPI > ranked[j].WPI
	})
	return ranked
}

// Compare looks both names up independently and returns the rows in the
// order requested.
func Compare(rows []models.FeatureRow, name1, name2 string) (*models.FeatureRow, *models.FeatureRow, error) {
	i1 := indexByName(rows, name1)
	i2 := indexByName(rows, name2)

	var missing []string
	if i1 < 0 {
		missing = append(missing, name1)
	}
	if i2 < 0 {
		missing = append(missing, name2)
	}
	if len(missing) > 0 {
		return nil, nil, &PlayerNotFoundError{Names: missing}
	}
	return &rows[i1], &rows[i2], nil
}

// BuildComparison assembles the head-to-head view for two found rows
func BuildComparison(p1, p2 string, r1, r2 *models.FeatureRow) *models.Comparison {
	stats := make([]models.ComparisonStat, 0, len(ComparisonStats))
	for _, s := range ComparisonStats {
		stats = append(stats, models.ComparisonStat{
			Name:    s,
			Player1: r1.Metric(s),
			Player2: r2.Metric(s),
		})
	}
	return &models.Comparison{P1: p1, P2: p2, Player1: r1, Player2: r2, Stats: stats}
}

// BuildLeaderboard converts ranked rows into display entries
func BuildLeaderboard(ranked []models.FeatureRow) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for i := range ranked {
		r := &ranked[i]
		entries = append(entries, models.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: r.PlayerID,
			Name:     r.PlayerName,
			WPI:      Round2(r.Metric("wpi")),
			Kills:    int64(r.Metric("kills")),
			Damage:   int64(r.Metric("damage")),
			Matches:  int64(r.Metric("matches_played")),
		})
	}
	return entries
}

// Round2 rounds to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
