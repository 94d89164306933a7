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

// dateLayout is the on-disk date format for all date columns.
const dateLayout = "2006-01-02"

// WriteDataset exports all five tables to dir, creating it if needed.
// Files are replaced wholesale; there is no appending.
func WriteDataset(dir string, ds *perinat.Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, table := range Tables {
		if err := writeTable(filepath.Join(dir, table.File), table, ds); err != nil {
			return fmt.Errorf("failed to write %s: %w", table.File, err)
		}
	}
	return nil
}

func writeTable(path string, table TableSpec, ds *perinat.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return err
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows(ds) {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("row has %d cells, table %s has %d columns", len(row), table.Name, len(table.Columns))
		}
		for i, cell := range row {
			record[i] = formatCell(cell)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// formatCell renders one typed cell. nil renders as the empty string.
func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(dateLayout)
	default:
		return fmt.Sprintf("%v", v)
	}
}
