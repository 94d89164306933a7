package services

import (
	"context"
	"fmt"

	"github.com/vvka-141/perinat/pkg/perinat"
)

// Verifier reports post-load row counts per raw table. It asserts nothing;
// the counts are printed for eyeball verification against the generator
// summary.
//
// Stateless and safe for concurrent use; thread safety depends on the
// injected DBConnection.
type Verifier struct{}

// NewVerifier creates a Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify counts the rows of each named raw table, in the given order.
func (v *Verifier) Verify(ctx context.Context, conn perinat.DBConnection, tables []string) ([]perinat.TableCount, error) {
	counts := make([]perinat.TableCount, 0, len(tables))

	for _, table := range tables {
		var rows int64
		if err := conn.QueryRow(ctx, buildCountSQL(table)).Scan(&rows); err != nil {
			return nil, fmt.Errorf("failed to count raw.%s: %w", table, err)
		}
		counts = append(counts, perinat.TableCount{Table: table, Rows: rows})
	}

	return counts, nil
}
