package logic

import "strings"

// Canonical field names of the processed player table
const (
	FieldPlayerID      = "player_id"
	FieldPlayerName    = "player_name"
	FieldMatchesPlayed = "matches_played"
	FieldKills         = "kills"
	FieldDeaths        = "deaths"
	FieldAssists       = "assists"
	FieldDamage        = "damage"
	FieldHeadshots     = "headshots"
	FieldWins          = "wins"
	FieldTop10s        = "top10s"
	FieldRevives       = "revives"
	FieldDistance      = "distance"
	FieldWeaponsUsed   = "weapons_used"
	FieldSurvivalTime  = "survival_time"
	FieldRank          = "rank"
)

// ColumnMap maps raw column spellings to canonical field names
type ColumnMap struct {
	Version string
	Renames map[string]string

	// folded holds the same renames keyed by foldColumn(key)
	folded map[string]string
}

// NewColumnMap builds a ColumnMap from exact-spelling renames
func NewColumnMap(version string, renames map[string]string) *ColumnMap {
	m := &ColumnMap{
		Version: version,
		Renames: renames,
		folded:  make(map[string]string, len(renames)),
	}
	for from, to := range renames {
		m.folded[foldColumn(from)] = to
	}
	return m
}

// ColumnMapV1 covers every spelling seen in the raw exports so far.
var ColumnMapV1 = NewColumnMap("v1", map[string]string{
	"Player_Name":       FieldPlayerName,
	"Matches_Played":    FieldMatchesPlayed,
	"Kills":             FieldKills,
	"Deaths":            FieldDeaths,
	"Assists":           FieldAssists,
	"Damage_Dealt":      FieldDamage,
	"Damage":            FieldDamage,
	"Headshots":         FieldHeadshots,
	"Wins":              FieldWins,
	"Top_10s":           FieldTop10s,
	"Top10s":            FieldTop10s,
	"Revives":           FieldRevives,
	"Distance_Traveled": FieldDistance,
	"Distance":          FieldDistance,
	"Weapons_Used":      FieldWeaponsUsed,
	"Time_Survived":     FieldSurvivalTime,
	"Survival_Time":     FieldSurvivalTime,
	"Rank":              FieldRank,
})

// DefaultColumnMap is the map used by Clean and ParseRecords
var DefaultColumnMap = ColumnMapV1

// Canonical resolves a raw header to a field name: trim, exact rename,
// then a case- and space-insensitive rename, else the lowercased name.
func (m *ColumnMap) Canonical(raw string) string {
	name := strings.TrimSpace(raw)
	if to, ok := m.Renames[name]; ok {
		return to
	}
	if to, ok := m.folded[foldColumn(name)]; ok {
		return to
	}
	return strings.ToLower(name)
}

func foldColumn(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}

// KeepFields is the recognized field set, in output order
var KeepFields = []string{
	FieldPlayerID, FieldPlayerName, FieldMatchesPlayed, FieldKills, FieldDeaths,
	FieldAssists, FieldDamage, FieldHeadshots, FieldWins, FieldTop10s,
	FieldRevives, FieldDistance, FieldWeaponsUsed, FieldSurvivalTime, FieldRank,
}

// NumericFields is KeepFields without the identifier and name
var NumericFields = KeepFields[2:]

// ClipFields are the cumulative counters clipped at ClipQuantile
var ClipFields = []string{
	FieldKills, FieldAssists, FieldDamage, FieldHeadshots,
	FieldRevives, FieldSurvivalTime, FieldDistance,
}

// ClipQuantile is the upper percentile used for outlier clipping
const ClipQuantile = 0.995

func isKeepField(name string) bool {
	for _, f := range KeepFields {
		if f == name {
			return true
		}
	}
	return false
}
