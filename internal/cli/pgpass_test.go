package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitPgpassLine(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{
			line: "localhost:5432:testdb:user:secret",
			want: []string{"localhost", "5432", "testdb", "user", "secret"},
		},
		{
			line: "*:*:*:user:secret",
			want: []string{"*", "*", "*", "user", "secret"},
		},
		{
			line: `localhost:5432:db:user:p\:a\\ss`,
			want: []string{"localhost", "5432", "db", "user", `p:a\ss`},
		},
		{
			line: "incomplete:line",
			want: []string{"incomplete", "line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := splitPgpassLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitPgpassLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLookupPgpass(t *testing.T) {
	content := `# development databases
localhost:5432:maternal_health_db:loader:local-secret
*:*:*:fallback_user:wildcard-secret
db.example.com:5433:proddb:prod_user:prod\:secret
`
	writeTestPgpass(t, content)

	tests := []struct {
		name         string
		host         string
		port         int
		database     string
		username     string
		wantPassword string
		wantFound    bool
	}{
		{
			name:         "exact match",
			host:         "localhost",
			port:         5432,
			database:     "maternal_health_db",
			username:     "loader",
			wantPassword: "local-secret",
			wantFound:    true,
		},
		{
			name:         "wildcard entry matches any host and database",
			host:         "anywhere",
			port:         9999,
			database:     "anydb",
			username:     "fallback_user",
			wantPassword: "wildcard-secret",
			wantFound:    true,
		},
		{
			name:         "escaped colon in password",
			host:         "db.example.com",
			port:         5433,
			database:     "proddb",
			username:     "prod_user",
			wantPassword: "prod:secret",
			wantFound:    true,
		},
		{
			name:      "no match for unknown user",
			host:      "localhost",
			port:      5432,
			database:  "maternal_health_db",
			username:  "stranger",
			wantFound: false,
		},
		{
			name:      "no match for wrong port",
			host:      "localhost",
			port:      5433,
			database:  "maternal_health_db",
			username:  "loader",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := lookupPgpass(tt.host, tt.port, tt.database, tt.username)
			if found != tt.wantFound {
				t.Fatalf("lookupPgpass() found = %v, want %v", found, tt.wantFound)
			}
			if found && got != tt.wantPassword {
				t.Errorf("lookupPgpass() = %q, want %q", got, tt.wantPassword)
			}
		})
	}
}

func TestLookupPgpass_MissingFile(t *testing.T) {
	t.Setenv("PGPASSFILE", filepath.Join(t.TempDir(), "nonexistent"))

	if _, found := lookupPgpass("localhost", 5432, "db", "user"); found {
		t.Error("lookupPgpass() found a password in a missing file")
	}
}

func TestLookupPgpass_SkipsCommentsAndBlanks(t *testing.T) {
	writeTestPgpass(t, "\n# localhost:5432:db:user:commented-out\n\nlocalhost:5432:db:user:real-secret\n")

	got, found := lookupPgpass("localhost", 5432, "db", "user")
	if !found {
		t.Fatal("lookupPgpass() did not find the entry")
	}
	if got != "real-secret" {
		t.Errorf("lookupPgpass() = %q, want real-secret", got)
	}
}

func TestPgpassPath_RespectsEnvVar(t *testing.T) {
	t.Setenv("PGPASSFILE", "/custom/path/pgpass")
	if got := pgpassPath(); got != "/custom/path/pgpass" {
		t.Errorf("pgpassPath() = %q, want /custom/path/pgpass", got)
	}
}

func TestPgpassPath_DefaultWhenNoEnv(t *testing.T) {
	t.Setenv("PGPASSFILE", "")
	if got := pgpassPath(); got == "" {
		t.Error("pgpassPath() returned empty string")
	}
}

func writeTestPgpass(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pgpass.conf")
	t.Setenv("PGPASSFILE", path)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}
