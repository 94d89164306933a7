package cli

import (
	"fmt"
	"os"

	"github.com/vvka-141/perinat/internal/config"
	"github.com/vvka-141/perinat/internal/db"
	"github.com/vvka-141/perinat/pkg/perinat"
)

// connectionStringFromEnv returns the first non-empty connection string from
// PERINAT_CONNECTION_STRING or DATABASE_URL environment variables.
func connectionStringFromEnv() string {
	if s := os.Getenv("PERINAT_CONNECTION_STRING"); s != "" {
		return s
	}
	return os.Getenv("DATABASE_URL")
}

// resolveConnection consolidates connection resolution for the load and
// verify commands. It handles the connection string flag, granular flags,
// Azure flags and environment variables with PostgreSQL-standard precedence.
func resolveConnection(
	connStringFlag string,
	granularFlags *db.GranularConnFlags,
	azureFlags *db.AzureFlags,
	projectConfig *config.ProjectConfig,
) (*perinat.ConnectionConfig, error) {
	connString := connStringFlag
	if connString == "" {
		connString = connectionStringFromEnv()
	}

	envVars := db.LoadFromEnvironment()

	connConfig, _, err := db.ResolveConnectionParams(
		connString,
		granularFlags,
		azureFlags,
		envVars,
		projectConfig,
	)
	if err != nil {
		return nil, err
	}

	return connConfig, nil
}

// resolveTargetDatabase applies database precedence: the -d/--database flag
// always overrides the connection string database.
func resolveTargetDatabase(
	flagDatabase string,
	connConfigDatabase string,
	commandName string,
	verbose bool,
) (string, error) {
	targetDB := flagDatabase

	if targetDB != "" {
		if verbose && connConfigDatabase != "" && targetDB != connConfigDatabase {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Using --database flag (%s) instead of connection string database (%s)\n",
				targetDB, connConfigDatabase)
		}
	} else {
		targetDB = connConfigDatabase
	}

	if targetDB == "" {
		return "", fmt.Errorf("database name is required\n"+
			"Provide via:\n"+
			"  1. --database/-d flag: perinat %s -d maternal_health_db\n"+
			"  2. Connection string: perinat %s --connection \"postgresql://user@host/maternal_health_db\"\n"+
			"  3. Environment variable: export PGDATABASE=maternal_health_db",
			commandName, commandName)
	}

	return targetDB, nil
}
