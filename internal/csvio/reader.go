package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vvka-141/perinat/pkg/perinat"
)

// CheckDataset reports whether dir holds at least one of the expected CSV
// files. The loader calls this before touching the database, so a wrong or
// empty data directory fails before the raw tables are dropped.
func CheckDataset(dir string) error {
	for _, table := range Tables {
		if _, err := os.Stat(filepath.Join(dir, table.File)); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: no CSV files in %s (run 'perinat generate' first?)", perinat.ErrDatasetNotFound, dir)
}

// ReadTable loads one table's CSV from dir and returns typed rows ready to
// bind as insert parameters: nil for empty nullable cells, otherwise
// string, int64, float64, bool or time.Time per the column spec.
func ReadTable(dir string, table TableSpec) ([][]any, error) {
	path := filepath.Join(dir, table.File)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run 'perinat generate' first?)", perinat.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(table.Columns)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	for i, col := range table.Columns {
		if header[i] != col.Name {
			return nil, fmt.Errorf("%s: column %d is %q, expected %q", table.File, i, header[i], col.Name)
		}
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rows := make([][]any, 0, len(records))
	for lineNum, record := range records {
		row := make([]any, len(record))
		for i, cell := range record {
			val, err := parseCell(cell, table.Columns[i].Kind)
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %s: %w", table.File, lineNum+2, table.Columns[i].Name, err)
			}
			row[i] = val
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseCell(cell string, kind ColKind) (any, error) {
	if cell == "" {
		return nil, nil
	}

	switch kind {
	case KindText:
		return cell, nil
	case KindInt:
		return strconv.ParseInt(cell, 10, 64)
	case KindFloat:
		return strconv.ParseFloat(cell, 64)
	case KindBool:
		return strconv.ParseBool(cell)
	case KindDate:
		return time.Parse(dateLayout, cell)
	default:
		return nil, fmt.Errorf("unknown column kind %d", kind)
	}
}
