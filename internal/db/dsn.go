package db

import "strings"

// NormalizeDSN trims whitespace and stray quotes from a DSN. The result is
// either a postgres URL or a SQLite path/file URI; the driver choice follows
// from IsPostgres.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	return s
}

// IsPostgres reports whether the DSN targets the postgres driver. Anything
// else is treated as a SQLite path or file URI.
func IsPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
