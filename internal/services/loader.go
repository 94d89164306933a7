package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vvka-141/perinat/internal/csvio"
	"github.com/vvka-141/perinat/internal/db"
	"github.com/vvka-141/perinat/pkg/perinat"
)

// batchSender is the slice of pgxpool.Pool the loader needs, split out so
// tests can substitute a fake.
type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type targetConnFunc func(ctx context.Context, connConfig *perinat.ConnectionConfig) (perinat.DBConnection, batchSender, func(), error)

// LoadService implements the bulk-load workflow: provision the warehouse
// schemas, drop-and-recreate the raw tables, load the CSV files and verify
// row counts.
//
// Thread-Safety: NOT safe for concurrent Load() calls on the same instance.
type LoadService struct {
	connectorFactory func(*perinat.ConnectionConfig) (perinat.Connector, error)
	approver         perinat.Approver
	logger           perinat.Logger
	provisioner      perinat.SchemaProvisioner
	verifier         *Verifier
	batchSize        int
	targetConnector  targetConnFunc
}

// NewLoadService creates a LoadService with all dependencies injected.
// Panics on nil dependencies: those are programmer errors that should fail
// loudly at startup, not surface as nil dereferences mid-load.
func NewLoadService(
	connectorFactory func(*perinat.ConnectionConfig) (perinat.Connector, error),
	approver perinat.Approver,
	logger perinat.Logger,
	provisioner perinat.SchemaProvisioner,
) *LoadService {
	if connectorFactory == nil {
		panic("connectorFactory cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if provisioner == nil {
		panic("provisioner cannot be nil")
	}

	svc := &LoadService{
		connectorFactory: connectorFactory,
		approver:         approver,
		logger:           logger,
		provisioner:      provisioner,
		verifier:         NewVerifier(),
		batchSize:        perinat.DefaultBatchSize,
	}
	svc.targetConnector = svc.defaultTargetConnector
	return svc
}

func (s *LoadService) defaultTargetConnector(ctx context.Context, connConfig *perinat.ConnectionConfig) (perinat.DBConnection, batchSender, func(), error) {
	connector, err := s.connectorFactory(connConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create connector: %w", err)
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		return nil, nil, nil, err // already wrapped with connection guidance
	}

	cleanup := func() { pool.Close() }
	return db.NewPoolAdapter(pool), pool, cleanup, nil
}

// Load executes the full load workflow and returns the verified per-table
// row counts. A single table failing to load is logged at Warn and skipped;
// the remaining tables still load and the error is not propagated.
func (s *LoadService) Load(ctx context.Context, config perinat.LoadConfig) ([]perinat.TableCount, error) {
	connConfig, err := s.validateAndParseConfig(config)
	if err != nil {
		return nil, err
	}

	if err := csvio.CheckDataset(config.DataDir); err != nil {
		return nil, err
	}

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	dbConn, sender, cleanup, err := s.targetConnector(ctx, connConfig)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	s.logger.Verbose("Requesting approval to rebuild raw tables in '%s'", config.DatabaseName)
	approved, err := s.approver.RequestApproval(ctx, config.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("approval request failed: %w", err)
	}
	if !approved {
		return nil, perinat.ErrApprovalDenied
	}

	s.logger.Verbose("Provisioning schemas and raw tables")
	if err := s.provisioner.CreateSchemas(ctx, dbConn); err != nil {
		return nil, fmt.Errorf("%w: %w", perinat.ErrLoadFailed, err)
	}
	tableNames := make([]string, len(csvio.Tables))
	for i, t := range csvio.Tables {
		tableNames[i] = t.Name
	}
	if err := s.provisioner.RecreateRawTables(ctx, dbConn, tableNames); err != nil {
		return nil, fmt.Errorf("%w: %w", perinat.ErrLoadFailed, err)
	}

	loadID := uuid.New()
	s.logger.Verbose("Load run %s", loadID)

	for _, table := range csvio.Tables {
		rowCount, err := s.loadTable(ctx, sender, config.DataDir, table)
		if err != nil {
			s.logger.Warn("Failed to load %s: %v. Skipping table.", table.Name, err)
			continue
		}

		if _, err := dbConn.Exec(ctx, queryInsertAudit, loadID, table.Name, rowCount); err != nil {
			s.logger.Warn("Failed to record audit row for %s: %v", table.Name, err)
		}
		s.logger.Info("Loaded %d rows into raw.%s", rowCount, table.Name)
	}

	counts, err := s.verifier.Verify(ctx, dbConn, tableNames)
	if err != nil {
		return nil, fmt.Errorf("%w: verification failed: %w", perinat.ErrLoadFailed, err)
	}

	s.logger.Info("✓ Load completed")
	return counts, nil
}

// validateAndParseConfig validates the configuration and parses the
// connection string into connection parameters.
func (s *LoadService) validateAndParseConfig(config perinat.LoadConfig) (*perinat.ConnectionConfig, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s.logger.Verbose("Starting load into database '%s'", config.DatabaseName)
	s.logger.Verbose("Data directory: %s", config.DataDir)

	connConfig, err := db.ParseConnectionString(config.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	if connConfig.AppName == "" {
		connConfig.AppName = "perinat"
	}
	connConfig.Database = config.DatabaseName

	connConfig.AuthMethod = config.AuthMethod
	connConfig.AzureTenantID = config.AzureTenantID
	connConfig.AzureClientID = config.AzureClientID
	connConfig.AzureClientSecret = config.AzureClientSecret
	connConfig.AWSRegion = config.AWSRegion
	connConfig.GoogleInstance = config.GoogleInstance

	return connConfig, nil
}

// loadTable reads one table's CSV and inserts its rows in batched rounds.
// Returns the number of rows inserted.
func (s *LoadService) loadTable(ctx context.Context, sender batchSender, dataDir string, table csvio.TableSpec) (int, error) {
	rows, err := csvio.ReadTable(dataDir, table)
	if err != nil {
		return 0, err
	}

	insertSQL := buildInsertSQL(table)

	for start := 0; start < len(rows); start += s.batchSize {
		end := min(start+s.batchSize, len(rows))

		batch := &pgx.Batch{}
		for _, row := range rows[start:end] {
			batch.Queue(insertSQL, row...)
		}

		if err := s.sendBatch(ctx, sender, batch); err != nil {
			return 0, fmt.Errorf("batch insert into raw.%s failed: %w", table.Name, err)
		}
	}

	return len(rows), nil
}

func (s *LoadService) sendBatch(ctx context.Context, sender batchSender, batch *pgx.Batch) error {
	results := sender.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return results.Close()
}
