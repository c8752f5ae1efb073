package database

import (
	"database/sql"
	"regexp"
	"strconv"
)

// Dialect captures the differences between the supported engines so the
// repositories can be written once against ? placeholders.
type Dialect interface {
	// DriverName returns the driver name for sql.Open.
	DriverName() string

	// DSN returns the data source name for the connection.
	DSN(config DialectConfig) string

	// RewriteQuery converts placeholder syntax if needed (? to $1 for
	// postgres).
	RewriteQuery(query string) string

	// SupportsLastInsertId reports whether the driver implements
	// LastInsertId(); postgres needs a RETURNING clause instead.
	SupportsLastInsertId() bool

	// ConfigureConnection applies engine-specific connection settings.
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir returns the per-engine migrations directory name.
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the SQL for the migrations
	// tracking table.
	CreateMigrationsTableQuery() string
}

// DialectConfig holds connection parameters. Path is used by sqlite, URL by
// postgres and mysql.
type DialectConfig struct {
	Path string
	URL  string
}

var placeholderRegexp = regexp.MustCompile(`\?`)

// rewritePlaceholdersToNumbered converts ? placeholders to $1, $2, ...
func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}
