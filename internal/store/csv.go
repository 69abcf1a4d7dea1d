package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/models"
)

// ReadRawTable reads a CSV with a header row. Ragged rows are allowed;
// missing cells read as empty.
func ReadRawTable(r io.Reader) (logic.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return logic.RawTable{}, errors.New("empty csv: no header row")
	}
	if err != nil {
		return logic.RawTable{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := logic.RawTable{Header: header}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return logic.RawTable{}, fmt.Errorf("read row %d: %w", len(table.Rows)+1, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ReadRawFile reads a raw export from disk
func ReadRawFile(path string) (logic.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return logic.RawTable{}, err
	}
	defer f.Close()

	table, err := ReadRawTable(f)
	if err != nil {
		return logic.RawTable{}, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// WriteTable writes records as CSV with a KeepFields header
func WriteTable(w io.Writer, records []models.PlayerRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(logic.KeepFields); err != nil {
		return err
	}
	row := make([]string, len(logic.KeepFields))
	for i := range records {
		rec := &records[i]
		values := logic.RecordValues(rec)
		row[0] = rec.PlayerID
		row[1] = rec.PlayerName
		for j, f := range logic.NumericFields {
			row[j+2] = strconv.FormatFloat(values[f], 'f', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVStore keeps the processed table in a single CSV file
type CSVStore struct {
	Path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{Path: path}
}

// LoadPlayers reads the processed file. It is already clean, so outliers
// are not clipped again.
func (s *CSVStore) LoadPlayers(ctx context.Context) ([]models.PlayerRecord, error) {
	table, err := ReadRawFile(s.Path)
	if err != nil {
		return nil, err
	}
	return logic.ParseRecords(table)
}

// SavePlayers replaces the file atomically
func (s *CSVStore) SavePlayers(ctx context.Context, records []models.PlayerRecord) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".players-*.csv")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := WriteTable(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}

func (s *CSVStore) Ping(ctx context.Context) error {
	_, err := os.Stat(s.Path)
	return err
}

func (s *CSVStore) Close() error { return nil }
