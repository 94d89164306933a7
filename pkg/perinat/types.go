package perinat

import (
	"errors"
	"fmt"
	"time"
)

// GenerateConfig contains all parameters needed for a dataset generation run.
type GenerateConfig struct {
	// Seed drives every random draw; the same seed reproduces the dataset exactly.
	Seed int64

	// NumPatients is the number of patient rows to synthesize.
	NumPatients int

	// StartDate and EndDate bound the delivery dates of all pregnancies.
	StartDate time.Time
	EndDate   time.Time

	// OutputDir is the directory receiving the five CSV files.
	OutputDir string

	// Defects configures the deliberate quality-defect injection.
	Defects DefectConfig

	// Verbose enables detailed logging.
	Verbose bool
}

// DefectConfig holds the exact counts of quality defects injected after
// generation. Counts larger than the available rows are clamped.
type DefectConfig struct {
	// NullEducation is the number of patients whose education_level is nulled.
	NullEducation int

	// NullBPSystolic is the number of visits whose bp_systolic is nulled.
	NullBPSystolic int

	// DuplicateVisits is the number of visit rows duplicated verbatim.
	DuplicateVisits int

	// ShiftedVisits is the number of visits whose date is shifted forward.
	ShiftedVisits int

	// DateShiftDays is the shift applied to the ShiftedVisits rows.
	DateShiftDays int
}

// DefaultDefects returns the defect counts of the published exercise dataset.
func DefaultDefects() DefectConfig {
	return DefectConfig{
		NullEducation:   DefaultNullEducationCount,
		NullBPSystolic:  DefaultNullBPCount,
		DuplicateVisits: DefaultDuplicateVisits,
		ShiftedVisits:   DefaultShiftedVisits,
		DateShiftDays:   DefaultDateShiftDays,
	}
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if c.NumPatients <= 0 {
		errs = append(errs, fmt.Errorf("patient count must be positive: %w", ErrInvalidConfig))
	}

	if c.OutputDir == "" {
		errs = append(errs, fmt.Errorf("output directory is required: %w", ErrInvalidConfig))
	}

	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		errs = append(errs, fmt.Errorf("start and end dates are required: %w", ErrInvalidConfig))
	} else if !c.EndDate.After(c.StartDate) {
		errs = append(errs, fmt.Errorf("end date must be after start date: %w", ErrInvalidConfig))
	}

	if c.Defects.NullEducation < 0 || c.Defects.NullBPSystolic < 0 ||
		c.Defects.DuplicateVisits < 0 || c.Defects.ShiftedVisits < 0 {
		errs = append(errs, fmt.Errorf("defect counts cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Defects.DateShiftDays < 0 {
		errs = append(errs, fmt.Errorf("date shift cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// LoadConfig contains all parameters needed for a bulk-load operation.
type LoadConfig struct {
	// DataDir is the directory containing the generated CSV files.
	DataDir string

	// DatabaseName is the target database name.
	DatabaseName string

	// ConnectionString is the PostgreSQL connection string (URI or ADO.NET format).
	// After CLI resolution, this contains the TARGET database connection.
	ConnectionString string

	// Force bypasses interactive approval of the raw-schema rebuild.
	Force bool

	// Timeout is the global timeout for the entire load.
	Timeout time.Duration

	// Verbose enables detailed logging.
	Verbose bool

	// AuthMethod indicates the authentication mechanism to use.
	AuthMethod AuthMethod

	// Azure Entra ID authentication parameters (used when AuthMethod is AuthMethodAzureEntraID)
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWSRegion is the region for AWS RDS IAM token signing.
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name
	// ("project:region:instance") for Google IAM authentication.
	GoogleInstance string
}

// Validate checks if the LoadConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *LoadConfig) Validate() error {
	var errs []error

	if c.DataDir == "" {
		errs = append(errs, fmt.Errorf("data directory is required: %w", ErrInvalidConfig))
	}

	if c.DatabaseName == "" {
		errs = append(errs, fmt.Errorf("database name is required: %w", ErrInvalidConfig))
	}

	if c.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("connection string is required: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	if !c.AuthMethod.IsValid() {
		errs = append(errs, fmt.Errorf("unknown auth method %d: %w", c.AuthMethod, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ConnectionConfig represents parsed connection parameters.
type ConnectionConfig struct {
	Host     string
	Port     int
	Database string
	Username string
	Password string
	SSLMode  string

	// AuthMethod indicates the authentication mechanism to use
	AuthMethod AuthMethod

	// Additional connection parameters
	AppName          string
	ConnectTimeout   time.Duration
	AdditionalParams map[string]string

	// Azure Entra ID authentication parameters (used when AuthMethod is AuthMethodAzureEntraID)
	// If all three are provided, Service Principal authentication is used.
	// If none are provided, DefaultAzureCredential chain is used (env vars, managed identity, CLI, etc.)
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// AWSRegion is the region for AWS RDS IAM token signing.
	AWSRegion string

	// GoogleInstance is the Cloud SQL instance connection name for Google IAM.
	GoogleInstance string
}

// AuthMethod represents the type of authentication to use.
type AuthMethod int

const (
	AuthMethodStandard     AuthMethod = iota // Username/Password
	AuthMethodAWSIAM                         // AWS IAM Database Authentication
	AuthMethodGoogleIAM                      // Google Cloud SQL IAM
	AuthMethodAzureEntraID                   // Azure Active Directory (Entra ID)
)

// String returns a human-readable string representation of the AuthMethod.
func (a AuthMethod) String() string {
	switch a {
	case AuthMethodStandard:
		return "Standard"
	case AuthMethodAWSIAM:
		return "AWS IAM"
	case AuthMethodGoogleIAM:
		return "Google IAM"
	case AuthMethodAzureEntraID:
		return "Azure Entra ID"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// IsValid returns true if the AuthMethod is a valid, defined value.
func (a AuthMethod) IsValid() bool {
	return a >= AuthMethodStandard && a <= AuthMethodAzureEntraID
}

// TableCount pairs a raw table name with its post-load row count.
type TableCount struct {
	Table string
	Rows  int64
}
