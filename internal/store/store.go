package store

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	libsql "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a gorm connection to dsn and runs migrations. dsn is
// either a local SQLite file path or a libSQL/Turso URL (http(s):// or
// libsql://), with the auth token read from FLATTENAST_LIBSQL_AUTH_TOKEN
// when the DSN is remote.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	if !isURL(dsn) {
		if dir := filepath.Dir(dsn); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	cfg := &gorm.Config{}
	if debug {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		dialector gorm.Dialector
		conn *sql.DB
	)
	if isURL(dsn) {
		var (
			connector driver.Connector
			err error
		)
		if token := os.Getenv("FLATTENAST_LIBSQL_AUTH_TOKEN"); token != "" {
			connector, err = libsql.NewConnector(dsn, libsql.WithAuthToken(token))
		} else {
			connector, err = libsql.NewConnector(dsn)
		}
		if err != nil {
			return nil, fmt.Errorf("creating libsql connector: %w", err)
		}
		conn = sql.OpenDB(connector)
		dialector = sqlite.New(sqlite.Config{
				DriverName: "libsql",
				Conn: conn,
				DSN: dsn,
		})
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		if conn != nil {
			conn.Close()
		}
		return nil, fmt.Errorf("connecting: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func isURL(dsn string) bool {
	return strings.HasPrefix(dsn, "http://") ||
	strings.HasPrefix(dsn, "https://") ||
	strings.HasPrefix(dsn, "libsql://")
}

// Migrate creates/updates the ast_nodes table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AstNodeRecord{})
}
