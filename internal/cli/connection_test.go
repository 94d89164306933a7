package cli

import (
	"strings"
	"testing"

	"github.com/vvka-141/perinat/internal/db"
)

func TestConnectionStringFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		perinatEnv  string
		databaseURL string
		want        string
	}{
		{
			name:        "PERINAT_CONNECTION_STRING takes precedence",
			perinatEnv:  "postgresql://user@perinat-host:5432/db",
			databaseURL: "postgresql://user@other-host:5432/db",
			want:        "postgresql://user@perinat-host:5432/db",
		},
		{
			name:        "DATABASE_URL used when PERINAT_CONNECTION_STRING unset",
			perinatEnv:  "",
			databaseURL: "postgresql://user@other-host:5432/db",
			want:        "postgresql://user@other-host:5432/db",
		},
		{
			name:        "empty when neither set",
			perinatEnv:  "",
			databaseURL: "",
			want:        "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PERINAT_CONNECTION_STRING", tt.perinatEnv)
			t.Setenv("DATABASE_URL", tt.databaseURL)

			if got := connectionStringFromEnv(); got != tt.want {
				t.Errorf("connectionStringFromEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestResolveTargetDatabase tests the database precedence logic.
// The -d/--database flag should always take precedence over connection string database.
func TestResolveTargetDatabase(t *testing.T) {
	tests := []struct {
		name               string
		flagDatabase       string
		connConfigDatabase string
		wantDatabase       string
		wantErr            bool
	}{
		{
			name:               "flag database takes precedence over connection string",
			flagDatabase:       "maternal_health_db",
			connConfigDatabase: "postgres",
			wantDatabase:       "maternal_health_db",
		},
		{
			name:               "use connection string database when flag not provided",
			flagDatabase:       "",
			connConfigDatabase: "maternal_health_db",
			wantDatabase:       "maternal_health_db",
		},
		{
			name:               "error when no database provided",
			flagDatabase:       "",
			connConfigDatabase: "",
			wantErr:            true,
		},
		{
			name:               "flag database overrides connection string (same name)",
			flagDatabase:       "maternal_health_db",
			connConfigDatabase: "maternal_health_db",
			wantDatabase:       "maternal_health_db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDatabase, err := resolveTargetDatabase(tt.flagDatabase, tt.connConfigDatabase, "load", false)

			if (err != nil) != tt.wantErr {
				t.Errorf("resolveTargetDatabase() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if gotDatabase != tt.wantDatabase {
				t.Errorf("resolveTargetDatabase() = %v, want %v", gotDatabase, tt.wantDatabase)
			}
		})
	}
}

// TestResolveTargetDatabase_ErrorMessage tests that helpful guidance is returned.
func TestResolveTargetDatabase_ErrorMessage(t *testing.T) {
	_, err := resolveTargetDatabase("", "", "verify", false)
	if err == nil {
		t.Fatal("expected error when no database provided, got nil")
	}

	errMsg := err.Error()
	expectedPhrases := []string{
		"database name is required",
		"--database/-d flag",
		"perinat verify",
		"Connection string",
		"Environment variable",
	}
	for _, phrase := range expectedPhrases {
		if !strings.Contains(errMsg, phrase) {
			t.Errorf("error message missing expected phrase %q\nGot: %s", phrase, errMsg)
		}
	}
}

// TestResolveConnection_GranularFlags tests connection resolution with granular CLI flags.
func TestResolveConnection_GranularFlags(t *testing.T) {
	clearConnectionEnv(t)

	tests := []struct {
		name          string
		granularFlags *db.GranularConnFlags
		wantHost      string
		wantPort      int
		wantDatabase  string
		wantSSLMode   string
	}{
		{
			name: "all granular flags provided",
			granularFlags: &db.GranularConnFlags{
				Host:     "db.example.com",
				Port:     5433,
				Username: "loader",
				Database: "maternal_health_db",
				SSLMode:  "require",
			},
			wantHost:     "db.example.com",
			wantPort:     5433,
			wantDatabase: "maternal_health_db",
			wantSSLMode:  "require",
		},
		{
			name: "partial flags fall back to defaults",
			granularFlags: &db.GranularConnFlags{
				Host:     "myhost",
				Database: "mydb",
			},
			wantHost:     "myhost",
			wantPort:     5432,
			wantDatabase: "mydb",
			wantSSLMode:  "prefer",
		},
		{
			name:          "no flags uses defaults",
			granularFlags: &db.GranularConnFlags{},
			wantHost:      "localhost",
			wantPort:      5432,
			wantSSLMode:   "prefer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connConfig, err := resolveConnection("", tt.granularFlags, &db.AzureFlags{}, nil)
			if err != nil {
				t.Fatalf("resolveConnection() error = %v", err)
			}

			if connConfig.Host != tt.wantHost {
				t.Errorf("host = %v, want %v", connConfig.Host, tt.wantHost)
			}
			if connConfig.Port != tt.wantPort {
				t.Errorf("port = %v, want %v", connConfig.Port, tt.wantPort)
			}
			if tt.wantDatabase != "" && connConfig.Database != tt.wantDatabase {
				t.Errorf("database = %v, want %v", connConfig.Database, tt.wantDatabase)
			}
			if connConfig.SSLMode != tt.wantSSLMode {
				t.Errorf("sslmode = %v, want %v", connConfig.SSLMode, tt.wantSSLMode)
			}
		})
	}
}

// TestResolveConnection_EnvConnectionString tests that the environment
// connection string is picked up when no flag is given.
func TestResolveConnection_EnvConnectionString(t *testing.T) {
	clearConnectionEnv(t)
	t.Setenv("PERINAT_CONNECTION_STRING", "postgresql://loader@envhost:5433/envdb")

	connConfig, err := resolveConnection("", &db.GranularConnFlags{}, &db.AzureFlags{}, nil)
	if err != nil {
		t.Fatalf("resolveConnection() error = %v", err)
	}

	if connConfig.Host != "envhost" {
		t.Errorf("host = %v, want envhost", connConfig.Host)
	}
	if connConfig.Port != 5433 {
		t.Errorf("port = %v, want 5433", connConfig.Port)
	}
	if connConfig.Database != "envdb" {
		t.Errorf("database = %v, want envdb", connConfig.Database)
	}
}

// clearConnectionEnv blanks every environment variable the resolver consults
// so tests see deterministic defaults.
func clearConnectionEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PERINAT_CONNECTION_STRING", "DATABASE_URL",
		"PGHOST", "PGPORT", "PGUSER", "PGDATABASE", "PGPASSWORD", "PGSSLMODE",
		"AZURE_TENANT_ID", "AZURE_CLIENT_ID", "AZURE_CLIENT_SECRET",
	} {
		t.Setenv(key, "")
	}
}
