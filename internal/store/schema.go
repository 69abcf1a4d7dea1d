// Package store persists the processed player table.
package store

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/models"
)

// OrdColumn keeps table order in database backends
const OrdColumn = "ord"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTable rejects table names that would need quoting
func ValidateTable(name string) error {
	if !tableName.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}
	return nil
}

// columnTypes are the per-dialect SQL types of the player table
type columnTypes struct {
	ord, text, number string
}

// createTableSQL builds a CREATE TABLE IF NOT EXISTS statement. suffix is
// appended after the column list (engine clauses).
func createTableSQL(table string, quote func(string) string, types columnTypes, suffix string) string {
	cols := []string{
		quote(OrdColumn) + " " + types.ord + " NOT NULL",
		quote(logic.FieldPlayerID) + " " + types.text + " NOT NULL",
		quote(logic.FieldPlayerName) + " " + types.text + " NOT NULL",
	}
	for _, f := range logic.NumericFields {
		cols = append(cols, quote(f)+" "+types.number+" NOT NULL")
	}
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", quote(table), strings.Join(cols, ",\n\t"))
	if suffix != "" {
		stmt += " " + suffix
	}
	return stmt
}

// selectSQL reads the player columns in table order
func selectSQL(table string, quote func(string) string) string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(quoteAll(logic.KeepFields, quote), ", "), quote(table), quote(OrdColumn))
}

func quoteAll(names []string, quote func(string) string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = quote(n)
	}
	return out
}

// insertColumns is ord followed by KeepFields
func insertColumns() []string {
	return append([]string{OrdColumn}, logic.KeepFields...)
}

// rowValues flattens a record in insertColumns order
func rowValues(ord int, rec *models.PlayerRecord) []any {
	values := logic.RecordValues(rec)
	row := make([]any, 0, len(logic.KeepFields)+1)
	row = append(row, ord, rec.PlayerID, rec.PlayerName)
	for _, f := range logic.NumericFields {
		row = append(row, values[f])
	}
	return row
}

// scanTarget holds one row being scanned in KeepFields order
type scanTarget struct {
	id, name string
	numbers  []float64
}

func newScanTarget() *scanTarget {
	return &scanTarget{numbers: make([]float64, len(logic.NumericFields))}
}

func (s *scanTarget) dest() []any {
	d := make([]any, 0, len(logic.KeepFields))
	d = append(d, &s.id, &s.name)
	for i := range s.numbers {
		d = append(d, &s.numbers[i])
	}
	return d
}

func (s *scanTarget) record() models.PlayerRecord {
	values := make(map[string]float64, len(s.numbers))
	for i, f := range logic.NumericFields {
		values[f] = s.numbers[i]
	}
	rec := logic.RecordFromValues(s.id, values)
	rec.PlayerName = s.name
	return rec
}
