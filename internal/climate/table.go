package climate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// MonthsPerYear is the number of anomaly columns following the year.
const MonthsPerYear = 12

// DefaultMissing is the GISTEMP token for "no observation".
const DefaultMissing = "***"

var (
	ErrNoHeader    = errors.New("climate: no header row starting with Year")
	ErrColumnCount = errors.New("climate: expected Year followed by 12 month columns")
	ErrEmptyTable  = errors.New("climate: table has no data rows")
	ErrNotFinite   = errors.New("climate: anomaly is not a finite number")
)

// ParseError reports a cell that is neither a number nor the missing token.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %s: %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Cell is one monthly anomaly. Missing cells carry no value.
type Cell struct {
	Value   float64
	Missing bool
}

type Row struct {
	Year  string
	Cells [MonthsPerYear]Cell
}

// Table is loaded once and never modified.
type Table struct {
	Months []string
	Rows   []Row
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) Cell(row, month int) Cell { return t.Rows[row].Cells[month] }

// Load reads a CSV table. Title lines before the "Year" header are skipped,
// as are columns after December.
func Load(r io.Reader, missing string) (*Table, error) {
	if missing == "" {
		missing = DefaultMissing
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var table *Table
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if table == nil {
			first := strings.TrimPrefix(rec[0], "\ufeff")
			if !strings.EqualFold(strings.TrimSpace(first), "Year") {
				skipped++
				continue
			}
			if len(rec) < MonthsPerYear+1 {
				return nil, &ParseError{Line: line, Err: ErrColumnCount}
			}
			months := make([]string, MonthsPerYear)
			for i := range months {
				months[i] = strings.TrimSpace(rec[i+1])
			}
			table = &Table{Months: months}
			continue
		}

		if isBlank(rec) {
			continue
		}
		if len(rec) < MonthsPerYear+1 {
			return nil, &ParseError{Line: line, Err: ErrColumnCount}
		}

		row := Row{Year: strings.TrimSpace(rec[0])}
		for i := 0; i < MonthsPerYear; i++ {
			raw := strings.TrimSpace(rec[i+1])
			if raw == missing {
				row.Cells[i] = Cell{Missing: true}
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: table.Months[i], Value: raw, Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{Line: line, Column: table.Months[i], Value: raw, Err: ErrNotFinite}
			}
			row.Cells[i] = Cell{Value: v}
		}
		table.Rows = append(table.Rows, row)
	}

	if table == nil {
		return nil, ErrNoHeader
	}
	if len(table.Rows) == 0 {
		return nil, ErrEmptyTable
	}

	log.Debug().
		Int("rows", len(table.Rows)).
		Int("skipped_lines", skipped).
		Str("first_year", table.Rows[0].Year).
		Str("last_year", table.Rows[len(table.Rows)-1].Year).
		Msg("climate table loaded")

	return table, nil
}

// Open loads the table stored at path.
func Open(path, missing string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f, missing)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
