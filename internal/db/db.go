// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db // import "github.com/toeirei/typemap/internal/db"

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/toeirei/typemap/core/dialect"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	// SQL drivers for every supported dialect. go-ora registers itself
	// through the dialect package.
	_ "github.com/SAP/go-hdb/driver"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// Open opens the database for dbType (a dialect name or alias) and returns a
// Store. sqlite, postgres and mysql go through bun; oracle and hana use
// database/sql directly.
func Open(dbType, dsn string, opts ...StoreOption) (Store, error) {
	d, err := dialect.Lookup(dbType)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	configurePool(sqlDB, d, dsn)
	dbLogf("db: opened %s driver in %s", d.DriverName(), time.Since(start))

	if bdb := createBunDB(sqlDB, d); bdb != nil {
		return NewBunStore(d, bdb, opts...), nil
	}
	return NewSQLStore(d, sqlDB, opts...), nil
}

// createBunDB returns nil for dialects bun has no support for.
func createBunDB(sqlDB *sql.DB, d *dialect.Dialect) *bun.DB {
	switch d {
	case dialect.SQLite:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	case dialect.Postgres:
		return bun.NewDB(sqlDB, pgdialect.New())
	case dialect.MySQL:
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return nil
	}
}

// Pool defaults, overridable through TYPEMAP_DB_* environment variables.
const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdle     = 60 * time.Second
)

func configurePool(sqlDB *sql.DB, d *dialect.Dialect, dsn string) {
	maxOpen := envInt("TYPEMAP_DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	maxIdle := envInt("TYPEMAP_DB_MAX_IDLE_CONNS", defaultMaxIdleConns)
	// Each connection to an in-memory SQLite database sees its own database.
	if d == dialect.SQLite && isMemoryDSN(dsn) {
		maxOpen = 1
		maxIdle = 1
	}
	lifetime := time.Duration(envInt("TYPEMAP_DB_CONN_MAX_LIFETIME_SECONDS", int(defaultConnMaxLifetime/time.Second))) * time.Second
	idle := time.Duration(envInt("TYPEMAP_DB_CONN_MAX_IDLE_SECONDS", int(defaultConnMaxIdle/time.Second))) * time.Second

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)
	sqlDB.SetConnMaxIdleTime(idle)
	dbLogf("db: pool max open=%d idle=%d maxLifetime=%s maxIdle=%s", maxOpen, maxIdle, lifetime, idle)
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}
