package perinat

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Generation/load completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to database
	ExitApprovalDenied  = 12 // User denied schema rebuild approval
	ExitLoadFailed      = 13 // SQL execution failed during provisioning or load
)

const (
	// DefaultForceApprovalCountdown is the countdown duration before force approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 1 * time.Minute

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts.
	DefaultRetryMaxAttempts = 3

	// DefaultManagementDB is the default database to connect to for management operations.
	DefaultManagementDB = "postgres"

	// DefaultBatchSize is the number of rows sent per batch round during bulk loads.
	DefaultBatchSize = 1000
)

// Generator defaults matching the published ENP 2021 exercise dataset.
const (
	DefaultSeed        = 42
	DefaultNumPatients = 10000
	DefaultStartDate   = "2020-01-01"
	DefaultEndDate     = "2024-12-31"
	DefaultOutputDir   = "data/raw"
)

// Default quality-defect injection counts.
const (
	DefaultNullEducationCount = 50
	DefaultNullBPCount        = 100
	DefaultDuplicateVisits    = 20
	DefaultShiftedVisits      = 10
	DefaultDateShiftDays      = 400
)

// Schema names provisioned by the loader.
const (
	SchemaRaw       = "raw"
	SchemaStaging   = "staging"
	SchemaAnalytics = "analytics"
)
