package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/perinat/pkg/perinat"
)

type mockConnector struct {
	pool *pgxpool.Pool
	err  error
}

func (m *mockConnector) Connect(_ context.Context) (*pgxpool.Pool, error) {
	return m.pool, m.err
}

type mockApprover struct {
	approved  bool
	err       error
	requested []string
}

func (m *mockApprover) RequestApproval(_ context.Context, dbName string) (bool, error) {
	m.requested = append(m.requested, dbName)
	return m.approved, m.err
}

type mockProvisioner struct {
	schemasErr error
	tablesErr  error
	recreated  []string
}

func (m *mockProvisioner) CreateSchemas(_ context.Context, _ perinat.DBConnection) error {
	return m.schemasErr
}

func (m *mockProvisioner) RecreateRawTables(_ context.Context, _ perinat.DBConnection, tables []string) error {
	m.recreated = append(m.recreated, tables...)
	return m.tablesErr
}

type mockLogger struct {
	mu    sync.Mutex
	warns []string
	infos []string
}

func (m *mockLogger) Verbose(_ string, _ ...interface{}) {}

func (m *mockLogger) Info(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Warn(format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, fmt.Sprintf(format, args...))
}

func (m *mockLogger) Error(_ string, _ ...interface{}) {}

// mockDBConnection records executed statements and serves canned row counts.
type mockDBConnection struct {
	executed  [][]any
	execErr   error
	rowCounts map[string]int64
	queryErr  error
}

func (m *mockDBConnection) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	m.executed = append(m.executed, append([]any{sql}, args...))
	return pgconn.CommandTag{}, m.execErr
}

func (m *mockDBConnection) QueryRow(_ context.Context, sql string, _ ...any) perinat.Row {
	if m.queryErr != nil {
		return &mockRow{err: m.queryErr}
	}
	for table, count := range m.rowCounts {
		if sql == buildCountSQL(table) {
			return &mockRow{count: count}
		}
	}
	return &mockRow{}
}

type mockRow struct {
	count int64
	err   error
}

func (r *mockRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int64); ok {
		*p = r.count
	}
	return nil
}

// mockBatchSender counts queued statements and can fail a designated batch
// round.
type mockBatchSender struct {
	batches   []*pgx.Batch
	failRound int // 1-based; 0 disables
	failErr   error
}

func (m *mockBatchSender) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	m.batches = append(m.batches, b)
	if m.failRound > 0 && len(m.batches) == m.failRound {
		return &mockBatchResults{n: b.Len(), err: m.failErr}
	}
	return &mockBatchResults{n: b.Len()}
}

func (m *mockBatchSender) queuedRows() int {
	total := 0
	for _, b := range m.batches {
		total += b.Len()
	}
	return total
}

type mockBatchResults struct {
	n   int
	err error
}

func (r *mockBatchResults) Exec() (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, r.err
}

func (r *mockBatchResults) Query() (pgx.Rows, error) { return nil, r.err }
func (r *mockBatchResults) QueryRow() pgx.Row        { return nil }
func (r *mockBatchResults) Close() error             { return nil }
