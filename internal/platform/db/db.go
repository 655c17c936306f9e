package db

import (
	"database/sql"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect int

const (
	Postgres Dialect = iota
	MySQL
	SQLite
)

// ParseDialect maps a DB_DRIVER value onto a dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	case "mysql", "mariadb":
		return MySQL, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return 0, fmt.Errorf("parse dialect: unsupported driver %q", driver)
}

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case MySQL:
		return "mysql"
	case SQLite:
		return "sqlite"
	}
	return "pgx"
}

func (d Dialect) String() string { return d.DriverName() }

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Placeholders returns count markers starting at from, comma separated.
func (d Dialect) Placeholders(from, count int) string {
	ph := make([]string, count)
	for i := range ph {
		ph[i] = d.Placeholder(from + i)
	}
	return strings.Join(ph, ",")
}

// Upsert renders an insert that overwrites existing rows on key conflict.
func (d Dialect) Upsert(table string, columns []string, keys []string) string {
	cols := strings.Join(columns, ", ")
	values := d.Placeholders(1, len(columns))

	switch d {
	case MySQL:
		sets := make([]string, 0, len(columns))
		for _, c := range columns {
			sets = append(sets, fmt.Sprintf("%s = VALUES(%s)", c, c))
		}
		return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON DUPLICATE KEY UPDATE %s",
			table, cols, values, strings.Join(sets, ", "))
	case SQLite:
		return fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)", table, cols, values)
	}

	sets := make([]string, 0, len(columns))
	for _, c := range columns {
		if !slices.Contains(keys, c) {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}
	conflict := fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", strings.Join(keys, ", "))
	if len(sets) > 0 {
		conflict = fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(keys, ", "), strings.Join(sets, ", "))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) %s", table, cols, values, conflict)
}

// Open connects with the dialect's driver and verifies the connection.
// Drivers are registered by blank imports in the commands.
func Open(d Dialect, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open(d.DriverName(), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", d, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if d == SQLite {
		// Serialize writers; in-memory databases are per-connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify %s connection: %w", d, err)
	}

	return db, nil
}
