package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/perinat/internal/logging"
	"github.com/vvka-141/perinat/internal/services"
	testhelpers "github.com/vvka-141/perinat/internal/testing"
	"github.com/vvka-141/perinat/pkg/perinat"
)

func generateTestData(t *testing.T, dir string) map[string]int {
	t.Helper()

	svc := services.NewGenerateService(logging.NewNullLogger())
	counts, err := svc.Generate(perinat.GenerateConfig{
		Seed:        42,
		NumPatients: 100,
		StartDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		OutputDir:   dir,
		Defects: perinat.DefectConfig{
			NullEducation: 10, NullBPSystolic: 20, DuplicateVisits: 5,
			ShiftedVisits: 3, DateShiftDays: 400,
		},
	})
	require.NoError(t, err)
	return counts
}

func TestLoadService_Load_FullWorkflow(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	ctx := context.Background()

	dataDir := t.TempDir()
	generated := generateTestData(t, dataDir)

	loader := testhelpers.NewTestLoader(t)
	counts, err := loader.Load(ctx, perinat.LoadConfig{
		DataDir:          dataDir,
		DatabaseName:     "postgres",
		ConnectionString: connString,
		Verbose:          testing.Verbose(),
	})
	require.NoError(t, err)

	require.Len(t, counts, 5)
	for _, tc := range counts {
		assert.Equal(t, int64(generated[tc.Table]), tc.Rows, "row count mismatch for %s", tc.Table)
	}

	// Duplicates must survive the load: visit IDs are not unique in raw.
	pool := testhelpers.GetTestPool(t, connString, "postgres")
	var distinct, total int64
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(DISTINCT visit_id), COUNT(*) FROM raw.prenatal_visits").Scan(&distinct, &total))
	assert.Equal(t, total-5, distinct)

	// Audit history persists across loads, so other tests may have added
	// rows; the latest run contributes five.
	var auditRows int64
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM raw.load_audit WHERE load_id = (SELECT load_id FROM raw.load_audit ORDER BY loaded_at DESC LIMIT 1)").Scan(&auditRows))
	assert.Equal(t, int64(5), auditRows)
}

func TestLoadService_Load_Rerun_ReplacesRows(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	ctx := context.Background()

	dataDir := t.TempDir()
	generateTestData(t, dataDir)

	config := perinat.LoadConfig{
		DataDir:          dataDir,
		DatabaseName:     "postgres",
		ConnectionString: connString,
	}

	loader := testhelpers.NewTestLoader(t)
	first, err := loader.Load(ctx, config)
	require.NoError(t, err)
	second, err := loader.Load(ctx, config)
	require.NoError(t, err)

	// Reload replaces, not appends
	assert.Equal(t, first, second)

	// Audit history accumulates across reloads
	pool := testhelpers.GetTestPool(t, connString, "postgres")
	var auditLoads int64
	require.NoError(t, pool.QueryRow(ctx,
		"SELECT COUNT(DISTINCT load_id) FROM raw.load_audit").Scan(&auditLoads))
	assert.GreaterOrEqual(t, auditLoads, int64(2))
}

func TestLoadService_Load_MissingDataDir_AllTablesSkipped(t *testing.T) {
	connString := testhelpers.RequireDatabase(t)
	ctx := context.Background()

	loader := testhelpers.NewTestLoader(t)
	counts, err := loader.Load(ctx, perinat.LoadConfig{
		DataDir:          t.TempDir(), // empty: no CSV files
		DatabaseName:     "postgres",
		ConnectionString: connString,
	})
	require.NoError(t, err)

	for _, tc := range counts {
		assert.Equal(t, int64(0), tc.Rows, "table %s should be empty", tc.Table)
	}
}
