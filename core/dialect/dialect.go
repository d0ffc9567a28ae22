// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package dialect describes the database-specific side of type binding:
// DDL column names per SQL type code, descriptor substitutions for databases
// lacking a type, LOB value creation, and placeholder and identifier syntax.
package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/toeirei/typemap/core/descriptor"
	"github.com/toeirei/typemap/core/descriptor/sqltype"
)

var (
	// ErrUnsupportedDialect is returned by Lookup for unknown names.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
	// ErrUnsupportedType is returned when a dialect has no column type for a code.
	ErrUnsupportedType = errors.New("unsupported column type")
)

// Dialect is immutable once registered. It satisfies basictype.Options.
type Dialect struct {
	name         string
	driverName   string
	columnTypes  map[sqltype.Code]string
	identityType string
	remaps       map[sqltype.Code]sqltype.Descriptor
	nationalized bool
	streamLobs   bool
	dropIfExists bool
	lobCreator   descriptor.LobCreator
	placeholder  func(n int) string
	quote        string
}

func (d *Dialect) Name() string { return d.name }

func (d *Dialect) String() string { return d.name }

// DriverName is the database/sql driver name to open.
func (d *Dialect) DriverName() string { return d.driverName }

// ColumnType returns the DDL type for code.
func (d *Dialect) ColumnType(code sqltype.Code) (string, error) {
	if t, ok := d.columnTypes[code]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %s has no column type for %s", ErrUnsupportedType, d.name, code)
}

// IdentityColumnType is the DDL for a surrogate BIGINT primary key.
func (d *Dialect) IdentityColumnType() string { return d.identityType }

// RemapSQLDescriptor substitutes descriptors for types the database lacks.
func (d *Dialect) RemapSQLDescriptor(sd sqltype.Descriptor) sqltype.Descriptor {
	if sd == nil || !sd.CanBeRemapped() {
		return sd
	}
	if r, ok := d.remaps[sd.SQLType()]; ok {
		return r
	}
	return sd
}

func (d *Dialect) SupportsNationalizedTypes() bool { return d.nationalized }

// SupportsDropIfExists reports whether DROP TABLE accepts IF EXISTS.
func (d *Dialect) SupportsDropIfExists() bool { return d.dropIfExists }

func (d *Dialect) UseStreamForLobBinding() bool { return d.streamLobs }

func (d *Dialect) LobCreator() descriptor.LobCreator {
	if d.lobCreator == nil {
		return descriptor.NonContextualLobCreator
	}
	return d.lobCreator
}

// Placeholder returns the bind marker for the n-th parameter, 1-based.
func (d *Dialect) Placeholder(n int) string {
	if d.placeholder == nil {
		return "?"
	}
	return d.placeholder(n)
}

// QuoteIdent quotes a table or column name.
func (d *Dialect) QuoteIdent(ident string) string {
	return d.quote + strings.ReplaceAll(ident, d.quote, d.quote+d.quote) + d.quote
}

// Options are a dialect's wrapper options with the LOB stream binding
// decided by configuration.
type Options struct {
	*Dialect
	stream bool
}

func (o Options) UseStreamForLobBinding() bool { return o.stream }

// WithStreamBinding overrides the dialect's default LOB binding.
func (d *Dialect) WithStreamBinding(stream bool) Options {
	return Options{Dialect: d, stream: stream}
}

func questionMark(int) string { return "?" }

var (
	dialects = map[string]*Dialect{}
	aliases  = map[string]string{}
)

func register(d *Dialect, alias ...string) *Dialect {
	dialects[d.name] = d
	for _, a := range alias {
		aliases[a] = d.name
	}
	return d
}

// Lookup returns the dialect registered under name or one of its aliases.
func Lookup(name string) (*Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if d, ok := dialects[key]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, name)
}

// Names lists the canonical dialect names, sorted.
func Names() []string {
	out := make([]string, 0, len(dialects))
	for n := range dialects {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
