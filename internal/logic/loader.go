package logic

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/squadstats/wpi-api/internal/models"
)

// RawTable is a header plus string cells, as read from a CSV export
type RawTable struct {
	Header []string
	Rows   [][]string
}

// MissingIdentifierError means a player could not be given an identifier:
// the table has neither player_id nor player_name, or a row has both blank.
type MissingIdentifierError struct {
	Row int // 1-based data row; 0 when the whole table lacks the columns
}

func (e *MissingIdentifierError) Error() string {
	if e.Row == 0 {
		return "player_id column missing and no player_name to derive it"
	}
	return fmt.Sprintf("row %d: player_id and player_name are both empty", e.Row)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveID builds a player identifier from a display name
func DeriveID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "_")
}

// ParseNumber converts a cell to a float. Anything unparsable is 0.
func ParseNumber(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// Clean normalizes a raw export into player records and clips outliers
// over the table.
func Clean(table RawTable) ([]models.PlayerRecord, error) {
	records, err := ParseRecords(table)
	if err != nil {
		return nil, err
	}
	ClipOutliers(records)
	return records, nil
}

// ParseRecords does everything Clean does except clipping.
func ParseRecords(table RawTable) ([]models.PlayerRecord, error) {
	return DefaultColumnMap.Parse(table)
}

// Parse maps headers through m, keeps recognized fields and coerces numbers.
// When two raw columns resolve to the same field the first one wins.
func (m *ColumnMap) Parse(table RawTable) ([]models.PlayerRecord, error) {
	index := make(map[string]int, len(KeepFields))
	for i, h := range table.Header {
		name := m.Canonical(h)
		if !isKeepField(name) {
			continue
		}
		if _, seen := index[name]; seen {
			continue
		}
		index[name] = i
	}

	idCol, hasID := index[FieldPlayerID]
	nameCol, hasName := index[FieldPlayerName]
	if !hasID && !hasName {
		return nil, &MissingIdentifierError{}
	}

	records := make([]models.PlayerRecord, 0, len(table.Rows))
	for r, row := range table.Rows {
		var rec models.PlayerRecord
		if hasName {
			rec.PlayerName = strings.TrimSpace(cell(row, nameCol))
		}
		if hasID {
			rec.PlayerID = strings.TrimSpace(cell(row, idCol))
		}
		if rec.PlayerID == "" {
			rec.PlayerID = DeriveID(rec.PlayerName)
		}
		if rec.PlayerID == "" && rec.PlayerName == "" {
			return nil, &MissingIdentifierError{Row: r + 1}
		}

		for _, f := range NumericFields {
			if col, ok := index[f]; ok {
				*numericField(&rec, f) = ParseNumber(cell(row, col))
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ClipOutliers clamps every ClipFields column to [0, p99.5] of that column
// and returns the upper bounds used. Bounds depend on the table, so this has
// to run again whenever the table changes.
func ClipOutliers(records []models.PlayerRecord) map[string]float64 {
	bounds := make(map[string]float64, len(ClipFields))
	if len(records) == 0 {
		return bounds
	}

	values := make([]float64, len(records))
	for _, f := range ClipFields {
		for i := range records {
			values[i] = *numericField(&records[i], f)
		}
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)
		hi := Quantile(sorted, ClipQuantile)
		bounds[f] = hi

		for i := range records {
			p := numericField(&records[i], f)
			*p = math.Max(0, math.Min(*p, hi))
		}
	}
	return bounds
}

// Quantile returns the q-th quantile of sorted data with linear
// interpolation between the closest ranks.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// numericField returns a pointer to the named numeric field of rec.
// Names outside NumericFields return a throwaway value.
func numericField(rec *models.PlayerRecord, name string) *float64 {
	switch name {
	case FieldMatchesPlayed:
		return &rec.MatchesPlayed
	case FieldKills:
		return &rec.Kills
	case FieldDeaths:
		return &rec.Deaths
	case FieldAssists:
		return &rec.Assists
	case FieldDamage:
		return &rec.Damage
	case FieldHeadshots:
		return &rec.Headshots
	case FieldWins:
		return &rec.Wins
	case FieldTop10s:
		return &rec.Top10s
	case FieldRevives:
		return &rec.Revives
	case FieldDistance:
		return &rec.Distance
	case FieldWeaponsUsed:
		return &rec.WeaponsUsed
	case FieldSurvivalTime:
		return &rec.SurvivalTime
	case FieldRank:
		return &rec.Rank
	}
	return new(float64)
}

// RecordValues returns rec's numeric fields keyed by name
func RecordValues(rec *models.PlayerRecord) map[string]float64 {
	out := make(map[string]float64, len(NumericFields))
	for _, f := range NumericFields {
		out[f] = *numericField(rec, f)
	}
	return out
}

// RecordFromValues builds a record from named numbers. Missing names are 0.
// Without an explicit "distance", walk_distance + ride_distance is used.
func RecordFromValues(id string, values map[string]float64) models.PlayerRecord {
	rec := models.PlayerRecord{PlayerID: id, PlayerName: id}
	for _, f := range NumericFields {
		if v, ok := values[f]; ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
			*numericField(&rec, f) = v
		}
	}
	if _, ok := values[FieldDistance]; !ok {
		rec.Distance = values["walk_distance"] + values["ride_distance"]
	}
	return rec
}
