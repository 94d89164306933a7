package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/perinat/internal/config"
	"github.com/vvka-141/perinat/pkg/perinat"
)

// newLoadTestCmd rebuilds the load flag set on a throwaway command so each
// test starts from pristine flag state.
func newLoadTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "load"}
	registerLoadFlags(cmd)
	return cmd
}

func TestBuildLoadConfig_RequiresDatabase(t *testing.T) {
	clearConnectionEnv(t)
	t.Chdir(t.TempDir())
	cmd := newLoadTestCmd(t)

	_, err := buildLoadConfig(cmd, "data/raw", false)
	if err == nil {
		t.Fatal("expected error when no database provided, got nil")
	}
	if !strings.Contains(err.Error(), "database name is required") {
		t.Errorf("error = %v, want database guidance", err)
	}
}

func TestBuildLoadConfig_DatabaseFlag(t *testing.T) {
	clearConnectionEnv(t)
	t.Chdir(t.TempDir())
	cmd := newLoadTestCmd(t)
	if err := cmd.Flags().Set("database", "maternal_health_db"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildLoadConfig(cmd, "/tmp/sample", false)
	if err != nil {
		t.Fatalf("buildLoadConfig() error = %v", err)
	}

	if cfg.DataDir != "/tmp/sample" {
		t.Errorf("data dir = %q, want /tmp/sample", cfg.DataDir)
	}
	if cfg.DatabaseName != "maternal_health_db" {
		t.Errorf("database = %q, want maternal_health_db", cfg.DatabaseName)
	}
	if !strings.Contains(cfg.ConnectionString, "maternal_health_db") {
		t.Errorf("connection string %q does not reference the target database", cfg.ConnectionString)
	}
	if cfg.Timeout != 3*time.Minute {
		t.Errorf("timeout = %v, want default 3m", cfg.Timeout)
	}
	if cfg.AuthMethod != perinat.AuthMethodStandard {
		t.Errorf("auth method = %v, want standard", cfg.AuthMethod)
	}
}

func TestBuildLoadConfig_TimeoutFromYAML(t *testing.T) {
	clearConnectionEnv(t)
	dir := t.TempDir()
	yaml := "timeout: \"10m\"\nconnection:\n  database: maternal_health_db\n"
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cmd := newLoadTestCmd(t)
	cfg, err := buildLoadConfig(cmd, "data/raw", false)
	if err != nil {
		t.Fatalf("buildLoadConfig() error = %v", err)
	}
	if cfg.Timeout != 10*time.Minute {
		t.Errorf("timeout = %v, want 10m from yaml", cfg.Timeout)
	}

	// An explicit --timeout flag beats the file
	cmd = newLoadTestCmd(t)
	if err := cmd.Flags().Set("timeout", "45s"); err != nil {
		t.Fatal(err)
	}
	cfg, err = buildLoadConfig(cmd, "data/raw", false)
	if err != nil {
		t.Fatalf("buildLoadConfig() error = %v", err)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("timeout = %v, want 45s from flag", cfg.Timeout)
	}
}

func TestBuildLoadConfig_GoogleInstanceEnablesIAM(t *testing.T) {
	clearConnectionEnv(t)
	t.Chdir(t.TempDir())
	cmd := newLoadTestCmd(t)
	if err := cmd.Flags().Set("database", "maternal_health_db"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("google-instance", "project:region:instance"); err != nil {
		t.Fatal(err)
	}

	cfg, err := buildLoadConfig(cmd, "data/raw", false)
	if err != nil {
		t.Fatalf("buildLoadConfig() error = %v", err)
	}

	if cfg.AuthMethod != perinat.AuthMethodGoogleIAM {
		t.Errorf("auth method = %v, want Google IAM", cfg.AuthMethod)
	}
	if cfg.GoogleInstance != "project:region:instance" {
		t.Errorf("google instance = %q", cfg.GoogleInstance)
	}
}

func TestBuildLoadConfig_PgpassFallback(t *testing.T) {
	clearConnectionEnv(t)
	t.Chdir(t.TempDir())
	writeTestPgpass(t, "localhost:5432:maternal_health_db:loader:pgpass-secret\n")

	cmd := newLoadTestCmd(t)
	for flag, value := range map[string]string{
		"database": "maternal_health_db",
		"username": "loader",
	} {
		if err := cmd.Flags().Set(flag, value); err != nil {
			t.Fatal(err)
		}
	}

	cfg, err := buildLoadConfig(cmd, "data/raw", false)
	if err != nil {
		t.Fatalf("buildLoadConfig() error = %v", err)
	}
	if !strings.Contains(cfg.ConnectionString, "pgpass-secret") {
		t.Errorf("connection string %q missing .pgpass password", cfg.ConnectionString)
	}
}

func TestApplyAuthSelection_YAMLAuthMethod(t *testing.T) {
	tests := []struct {
		name       string
		yamlAuth   string
		flags      cloudAuthFlags
		wantMethod perinat.AuthMethod
	}{
		{
			name:       "yaml aws-iam",
			yamlAuth:   "aws-iam",
			wantMethod: perinat.AuthMethodAWSIAM,
		},
		{
			name:       "yaml google-iam",
			yamlAuth:   "google-iam",
			wantMethod: perinat.AuthMethodGoogleIAM,
		},
		{
			name:       "yaml azure",
			yamlAuth:   "azure",
			wantMethod: perinat.AuthMethodAzureEntraID,
		},
		{
			name:       "azure flag beats yaml",
			yamlAuth:   "aws-iam",
			flags:      cloudAuthFlags{azure: true},
			wantMethod: perinat.AuthMethodAzureEntraID,
		},
		{
			name:       "unknown yaml value keeps standard",
			yamlAuth:   "kerberos",
			wantMethod: perinat.AuthMethodStandard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_REGION", "")
			connConfig := &perinat.ConnectionConfig{AuthMethod: perinat.AuthMethodStandard}
			projectCfg := &config.ProjectConfig{
				Connection: config.ConnectionConfig{AuthMethod: tt.yamlAuth},
			}

			applyAuthSelection(connConfig, projectCfg, tt.flags)

			if connConfig.AuthMethod != tt.wantMethod {
				t.Errorf("auth method = %v, want %v", connConfig.AuthMethod, tt.wantMethod)
			}
		})
	}
}
