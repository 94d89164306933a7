package services

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/perinat/internal/csvio"
)

// SQL builders for load operations. Table and column names come from the
// csvio specs, never from user input, but identifiers are still quoted
// through pgx.Identifier for uniformity.

const queryInsertAudit = `
	INSERT INTO raw.load_audit (load_id, table_name, row_count)
	VALUES ($1, $2, $3)
`

// buildInsertSQL renders the positional insert statement for one table.
func buildInsertSQL(table csvio.TableSpec) string {
	cols := make([]string, len(table.Columns))
	params := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		cols[i] = pgx.Identifier{col.Name}.Sanitize()
		params[i] = fmt.Sprintf("$%d", i+1)
	}

	return fmt.Sprintf("INSERT INTO raw.%s (%s) VALUES (%s)",
		pgx.Identifier{table.Name}.Sanitize(),
		strings.Join(cols, ", "),
		strings.Join(params, ", "))
}

// buildCountSQL renders the verification count query for one raw table.
func buildCountSQL(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM raw.%s", pgx.Identifier{table}.Sanitize())
}
