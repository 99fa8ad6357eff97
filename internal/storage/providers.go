package storage

import (
	"net/url"
	"strings"

	"github.com/jeanfide/jadwalin/internal/storage/postgres"
	"github.com/jeanfide/jadwalin/internal/storage/sqlite"
)

// NewSQLiteStore creates the default SQLite-backed provider.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed provider from a
// credential-free connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgres reports whether the config value is a PostgreSQL connection
// string rather than a file path.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries an inline password, which is never allowed.
func HasEmbeddedCredentials(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil {
		if _, isSet := u.User.Password(); isSet {
			return true
		}
	}
	for _, pair := range strings.Fields(connStr) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 && strings.EqualFold(strings.TrimSpace(kv[0]), "password") {
			return true
		}
	}
	return false
}
