// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/toeirei/typemap/core/dialect"
)

func memoryDSN(t *testing.T) string {
	t.Helper()
	return "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
}

// withTestStore opens an in-memory sqlite Store for the duration of fn.
func withTestStore(t *testing.T, fn func(s Store), opts ...StoreOption) {
	t.Helper()
	s, err := Open("sqlite", memoryDSN(t), opts...)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = s.Close() }()
	fn(s)
}

// withSQLStore opens an in-memory sqlite database behind a SQLStore that
// speaks for dialect d. SQLite accepts any declared column type, which lets
// the LOB binding of other dialects run without their servers.
func withSQLStore(t *testing.T, d *dialect.Dialect, fn func(s *SQLStore), opts ...StoreOption) {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", memoryDSN(t))
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	s := NewSQLStore(d, sqlDB, opts...)
	defer func() { _ = s.Close() }()
	fn(s)
}
