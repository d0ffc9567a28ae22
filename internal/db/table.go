// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"fmt"
	"strings"

	"github.com/toeirei/typemap/core/basictype"
	"github.com/toeirei/typemap/core/dialect"
)

// IDColumn is the surrogate key every mapped table carries.
const IDColumn = "id"

// Column maps one table column to a basic type.
type Column struct {
	Name string
	Type basictype.Type
}

// Table is a minimal mapping: an id column plus typed value columns.
type Table struct {
	Name    string
	Columns []Column
}

// Row is one record. Values are keyed by column name; absent keys bind NULL
// and NULL columns load as nil.
type Row struct {
	ID     int64
	Values map[string]any
}

func (t *Table) validate() error {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTable)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: %s has no columns", ErrInvalidTable, t.Name)
	}
	seen := map[string]struct{}{IDColumn: {}}
	for _, c := range t.Columns {
		if c.Type == nil || c.Name == "" {
			return fmt.Errorf("%w: %s has an incomplete column", ErrInvalidTable, t.Name)
		}
		if _, dup := seen[strings.ToLower(c.Name)]; dup {
			return fmt.Errorf("%w: %s repeats column %s", ErrInvalidTable, t.Name, c.Name)
		}
		seen[strings.ToLower(c.Name)] = struct{}{}
	}
	return nil
}

// CreateTableSQL renders the DDL for t. Column types follow the SQL
// descriptor each type uses under opts, so dialect remapping is honoured.
func CreateTableSQL(d *dialect.Dialect, opts basictype.Options, t *Table) (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}
	cols := make([]string, 0, len(t.Columns)+1)
	cols = append(cols, d.QuoteIdent(IDColumn)+" "+d.IdentityColumnType())
	for _, c := range t.Columns {
		ddl, err := d.ColumnType(c.Type.SQLDescriptorFor(opts).SQLType())
		if err != nil {
			return "", fmt.Errorf("column %s (%s): %w", c.Name, c.Type.Name(), err)
		}
		cols = append(cols, d.QuoteIdent(c.Name)+" "+ddl)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(t.Name), strings.Join(cols, ", ")), nil
}

// DropTableSQL renders the DROP statement for t.
func DropTableSQL(d *dialect.Dialect, t *Table) string {
	if d.SupportsDropIfExists() {
		return "DROP TABLE IF EXISTS " + d.QuoteIdent(t.Name)
	}
	return "DROP TABLE " + d.QuoteIdent(t.Name)
}

func insertSQL(d *dialect.Dialect, placeholder func(int) string, t *Table) string {
	names := make([]string, 0, len(t.Columns)+1)
	marks := make([]string, 0, len(t.Columns)+1)
	names = append(names, d.QuoteIdent(IDColumn))
	marks = append(marks, placeholder(1))
	for i, c := range t.Columns {
		names = append(names, d.QuoteIdent(c.Name))
		marks = append(marks, placeholder(i+2))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.QuoteIdent(t.Name), strings.Join(names, ", "), strings.Join(marks, ", "))
}

func selectSQL(d *dialect.Dialect, placeholder func(int) string, t *Table) string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, d.QuoteIdent(c.Name))
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = %s",
		strings.Join(names, ", "), d.QuoteIdent(t.Name), d.QuoteIdent(IDColumn), placeholder(1))
}
