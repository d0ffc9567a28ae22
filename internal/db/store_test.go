// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/toeirei/typemap/core/basictype"
	"github.com/toeirei/typemap/core/dialect"
)

func documentTable() *Table {
	return &Table{
		Name: "documents",
		Columns: []Column{
			{Name: "title", Type: basictype.String},
			{Name: "body", Type: basictype.MaterializedNClob},
		},
	}
}

func TestOpen_SQLiteUsesBun(t *testing.T) {
	withTestStore(t, func(s Store) {
		if _, ok := s.(*BunStore); !ok {
			t.Fatalf("expected *BunStore, got %T", s)
		}
		if s.Dialect() != dialect.SQLite {
			t.Fatalf("unexpected dialect %s", s.Dialect())
		}
	})
	if _, err := Open("db2", "x"); !errors.Is(err, dialect.ErrUnsupportedDialect) {
		t.Fatalf("expected ErrUnsupportedDialect, got %v", err)
	}
}

func TestStore_InsertLoad(t *testing.T) {
	ctx := context.Background()
	withTestStore(t, func(s Store) {
		tbl := documentTable()
		if err := s.CreateTable(ctx, tbl); err != nil {
			t.Fatalf("CreateTable: %v", err)
		}
		body := strings.Repeat("Grüße, 世界! ", 4096)
		if err := s.Insert(ctx, tbl, Row{ID: 7, Values: map[string]any{"title": "hello", "body": body}}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		row, err := s.Load(ctx, tbl, 7)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if row.Values["title"] != "hello" {
			t.Fatalf("title = %#v", row.Values["title"])
		}
		if row.Values["body"] != body {
			t.Fatalf("body not preserved, got %d bytes", len(row.Values["body"].(string)))
		}
	})
}

func TestStore_NullAndEmpty(t *testing.T) {
	ctx := context.Background()
	withTestStore(t, func(s Store) {
		tbl := documentTable()
		if err := s.CreateTable(ctx, tbl); err != nil {
			t.Fatalf("CreateTable: %v", err)
		}
		if err := s.Insert(ctx, tbl, Row{ID: 1, Values: map[string]any{"title": "null body"}}); err != nil {
			t.Fatalf("Insert null: %v", err)
		}
		if err := s.Insert(ctx, tbl, Row{ID: 2, Values: map[string]any{"title": "empty body", "body": ""}}); err != nil {
			t.Fatalf("Insert empty: %v", err)
		}
		row, err := s.Load(ctx, tbl, 1)
		if err != nil {
			t.Fatalf("Load 1: %v", err)
		}
		if row.Values["body"] != nil {
			t.Fatalf("expected nil body for NULL, got %#v", row.Values["body"])
		}
		row, err = s.Load(ctx, tbl, 2)
		if err != nil {
			t.Fatalf("Load 2: %v", err)
		}
		if v, ok := row.Values["body"].(string); !ok || v != "" {
			t.Fatalf("expected empty string body, got %#v", row.Values["body"])
		}
	})
}

func TestStore_NotFoundAndDuplicate(t *testing.T) {
	ctx := context.Background()
	withTestStore(t, func(s Store) {
		tbl := documentTable()
		if err := s.CreateTable(ctx, tbl); err != nil {
			t.Fatalf("CreateTable: %v", err)
		}
		if _, err := s.Load(ctx, tbl, 42); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		row := Row{ID: 1, Values: map[string]any{"title": "a"}}
		if err := s.Insert(ctx, tbl, row); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if err := s.Insert(ctx, tbl, row); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})
}

func TestStore_InvalidTable(t *testing.T) {
	ctx := context.Background()
	withTestStore(t, func(s Store) {
		bad := []*Table{
			nil,
			{Name: ""},
			{Name: "empty"},
			{Name: "dup", Columns: []Column{{Name: "a", Type: basictype.Text}, {Name: "A", Type: basictype.Text}}},
			{Name: "clash", Columns: []Column{{Name: "id", Type: basictype.Text}}},
			{Name: "untyped", Columns: []Column{{Name: "a"}}},
		}
		for _, tbl := range bad {
			if err := s.CreateTable(ctx, tbl); !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("expected ErrInvalidTable for %#v, got %v", tbl, err)
			}
		}
	})
}

func TestStore_BindErrorIsCounted(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics(prometheus.NewRegistry())
	withTestStore(t, func(s Store) {
		tbl := documentTable()
		if err := s.CreateTable(ctx, tbl); err != nil {
			t.Fatalf("CreateTable: %v", err)
		}
		err := s.Insert(ctx, tbl, Row{ID: 1, Values: map[string]any{"body": 3.14}})
		if err == nil {
			t.Fatalf("expected bind error for float body")
		}
		got := testutil.ToFloat64(m.ConversionErrors.WithLabelValues(basictype.MaterializedNClobName, "sqlite"))
		if got != 1 {
			t.Fatalf("conversion errors = %v, want 1", got)
		}
	}, WithMetrics(m))
}

func TestCreateTableSQL(t *testing.T) {
	tbl := &Table{Name: "docs", Columns: []Column{{Name: "body", Type: basictype.MaterializedNClob}}}
	cases := map[*dialect.Dialect]string{
		dialect.SQLite:   `CREATE TABLE "docs" ("id" integer primary key, "body" text)`,
		dialect.MySQL:    "CREATE TABLE `docs` (`id` bigint primary key, `body` longtext character set utf8mb4)",
		dialect.Oracle:   `CREATE TABLE "docs" ("id" number(19,0) primary key, "body" nclob)`,
		dialect.HANA:     `CREATE TABLE "docs" ("id" bigint primary key, "body" nclob)`,
		dialect.Postgres: `CREATE TABLE "docs" ("id" bigint primary key, "body" text)`,
	}
	for d, want := range cases {
		got, err := CreateTableSQL(d, d, tbl)
		if err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if got != want {
			t.Fatalf("%s DDL:\n got %s\nwant %s", d, got, want)
		}
	}
	if got := DropTableSQL(dialect.Oracle, tbl); got != `DROP TABLE "docs"` {
		t.Fatalf("oracle drop: %s", got)
	}
	if got := DropTableSQL(dialect.SQLite, tbl); got != `DROP TABLE IF EXISTS "docs"` {
		t.Fatalf("sqlite drop: %s", got)
	}
	if got := insertSQL(dialect.Oracle, dialect.Oracle.Placeholder, tbl); got != `INSERT INTO "docs" ("id", "body") VALUES (:1, :2)` {
		t.Fatalf("oracle insert: %s", got)
	}
	if got := selectSQL(dialect.Postgres, dialect.Postgres.Placeholder, tbl); got != `SELECT "body" FROM "docs" WHERE "id" = $1` {
		t.Fatalf("postgres select: %s", got)
	}
}
