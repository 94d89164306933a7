package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// pgpassPath returns the platform-appropriate .pgpass file path.
func pgpassPath() string {
	if custom := os.Getenv("PGPASSFILE"); custom != "" {
		return custom
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "postgresql", "pgpass.conf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pgpass")
}

// lookupPgpass searches the .pgpass file for a password matching the
// connection parameters, following the PostgreSQL matching rules:
// fields are host:port:database:username:password, `*` matches anything,
// and `\:` / `\\` escape literal colons and backslashes.
func lookupPgpass(host string, port int, database, username string) (string, bool) {
	path := pgpassPath()
	if path == "" {
		return "", false
	}

	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	portStr := strconv.Itoa(port)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := splitPgpassLine(line)
		if len(fields) != 5 {
			continue
		}

		if pgpassFieldMatches(fields[0], host) &&
			pgpassFieldMatches(fields[1], portStr) &&
			pgpassFieldMatches(fields[2], database) &&
			pgpassFieldMatches(fields[3], username) {
			return fields[4], true
		}
	}

	return "", false
}

// splitPgpassLine splits a .pgpass line on unescaped colons and unescapes
// each field.
func splitPgpassLine(line string) []string {
	var fields []string
	var field strings.Builder

	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, field.String())

	return fields
}

func pgpassFieldMatches(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
