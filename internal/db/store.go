// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/toeirei/typemap/core/basictype"
	"github.com/toeirei/typemap/core/dialect"
	"github.com/uptrace/bun"
)

// Store persists rows of mapped tables through basic types.
type Store interface {
	Dialect() *dialect.Dialect
	// Options are the dialect's wrapper options with the configured LOB
	// stream binding applied.
	Options() basictype.Options
	CreateTable(ctx context.Context, t *Table) error
	DropTable(ctx context.Context, t *Table) error
	Insert(ctx context.Context, t *Table, row Row) error
	Load(ctx context.Context, t *Table, id int64) (Row, error)
	Close() error
}

// StoreOption customizes a store at construction time.
type StoreOption func(*baseStore)

// WithStreamBinding overrides the dialect's default LOB stream binding.
func WithStreamBinding(stream bool) StoreOption {
	return func(s *baseStore) { s.opts = s.dialect.WithStreamBinding(stream) }
}

// WithMetrics makes the store count binds, extracts and failures.
func WithMetrics(m *Metrics) StoreOption {
	return func(s *baseStore) { s.metrics = m }
}

// execer is satisfied by both *sql.DB and *bun.DB.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type baseStore struct {
	dialect     *dialect.Dialect
	opts        basictype.Options
	conn        execer
	placeholder func(int) string
	metrics     *Metrics
}

func newBaseStore(d *dialect.Dialect, conn execer, placeholder func(int) string, opts []StoreOption) baseStore {
	s := baseStore{dialect: d, opts: d, conn: conn, placeholder: placeholder}
	for _, o := range opts {
		o(&s)
	}
	return s
}

func (s *baseStore) Dialect() *dialect.Dialect { return s.dialect }

func (s *baseStore) Options() basictype.Options { return s.opts }

func (s *baseStore) CreateTable(ctx context.Context, t *Table) error {
	ddl, err := CreateTableSQL(s.dialect, s.opts, t)
	if err != nil {
		return err
	}
	dbLogf("db: %s", ddl)
	if _, err := s.conn.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", t.Name, MapDBError(err))
	}
	return nil
}

func (s *baseStore) DropTable(ctx context.Context, t *Table) error {
	if err := t.validate(); err != nil {
		return err
	}
	if _, err := s.conn.ExecContext(ctx, DropTableSQL(s.dialect, t)); err != nil {
		return fmt.Errorf("drop table %s: %w", t.Name, err)
	}
	return nil
}

func (s *baseStore) Insert(ctx context.Context, t *Table, row Row) error {
	if err := t.validate(); err != nil {
		return err
	}
	args := make([]any, 0, len(t.Columns)+1)
	args = append(args, row.ID)
	for _, c := range t.Columns {
		arg, err := c.Type.BindAny(row.Values[c.Name], s.opts)
		s.metrics.bind(c.Type.Name(), s.dialect.Name(), err)
		if err != nil {
			return fmt.Errorf("insert %s.%s: %w", t.Name, c.Name, err)
		}
		args = append(args, arg)
	}
	if _, err := s.conn.ExecContext(ctx, insertSQL(s.dialect, s.placeholder, t), args...); err != nil {
		return MapDBError(err)
	}
	return nil
}

func (s *baseStore) Load(ctx context.Context, t *Table, id int64) (Row, error) {
	if err := t.validate(); err != nil {
		return Row{}, err
	}
	targets := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		targets[i] = c.Type.NewScanTarget(s.opts)
	}
	err := s.conn.QueryRowContext(ctx, selectSQL(s.dialect, s.placeholder, t), id).Scan(targets...)
	if errors.Is(err, sql.ErrNoRows) {
		return Row{}, fmt.Errorf("%s id %d: %w", t.Name, id, ErrNotFound)
	}
	if err != nil {
		return Row{}, fmt.Errorf("load %s id %d: %w", t.Name, id, err)
	}
	row := Row{ID: id, Values: make(map[string]any, len(t.Columns))}
	for i, c := range t.Columns {
		v, err := c.Type.ExtractAny(targets[i], s.opts)
		s.metrics.extract(c.Type.Name(), s.dialect.Name(), err)
		if err != nil {
			return Row{}, fmt.Errorf("load %s.%s: %w", t.Name, c.Name, err)
		}
		row.Values[c.Name] = v
	}
	return row, nil
}

// BunStore runs statements through bun for the dialects bun supports.
// bun inlines the arguments, so placeholders are always "?".
type BunStore struct {
	baseStore
	bun *bun.DB
}

// NewBunStore wraps an open bun database.
func NewBunStore(d *dialect.Dialect, bdb *bun.DB, opts ...StoreOption) *BunStore {
	s := &BunStore{bun: bdb}
	s.baseStore = newBaseStore(d, bdb, func(int) string { return "?" }, opts)
	return s
}

// Bun exposes the underlying bun database.
func (s *BunStore) Bun() *bun.DB { return s.bun }

func (s *BunStore) Close() error { return s.bun.Close() }

// SQLStore runs statements through database/sql with driver-side binding,
// so LOB arguments reach the driver unchanged.
type SQLStore struct {
	baseStore
	db *sql.DB
}

// NewSQLStore wraps an open database/sql handle.
func NewSQLStore(d *dialect.Dialect, sqlDB *sql.DB, opts ...StoreOption) *SQLStore {
	s := &SQLStore{db: sqlDB}
	s.baseStore = newBaseStore(d, sqlDB, d.Placeholder, opts)
	return s
}

func (s *SQLStore) Close() error { return s.db.Close() }
