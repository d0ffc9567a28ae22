// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/typemap/core/basictype"
)

// RoundTripColumn is the value column of the scratch table.
const RoundTripColumn = "value"

// RoundTripTable is the scratch table RoundTrip uses for typ.
func RoundTripTable(typ basictype.Type) *Table {
	return &Table{
		Name:    "typemap_roundtrip_" + typ.Name(),
		Columns: []Column{{Name: RoundTripColumn, Type: typ}},
	}
}

// RoundTrip writes value through typ, reads it back, and compares the two
// with the type's equality. value is nil or of the type's Go type. The
// scratch table is dropped afterwards. It returns the value read back, which
// is nil for SQL NULL.
func RoundTrip(ctx context.Context, s Store, typ basictype.Type, value any) (any, error) {
	t := RoundTripTable(typ)
	// Clear a table left behind by an interrupted run. Without IF EXISTS the
	// drop fails when there is nothing to drop.
	if err := s.DropTable(ctx, t); err != nil {
		if s.Dialect().SupportsDropIfExists() {
			return nil, err
		}
		dbLogf("db: no stale %s to drop: %v", t.Name, err)
	}
	if err := s.CreateTable(ctx, t); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.DropTable(context.WithoutCancel(ctx), t); err != nil {
			dbLogf("db: dropping %s failed: %v", t.Name, err)
		}
	}()

	if err := s.Insert(ctx, t, Row{ID: 1, Values: map[string]any{RoundTripColumn: value}}); err != nil {
		return nil, err
	}
	row, err := s.Load(ctx, t, 1)
	if err != nil {
		return nil, err
	}
	got := row.Values[RoundTripColumn]
	if !typ.IsEqualAny(value, got) {
		return got, fmt.Errorf("%w: %s wrote %s, read %s", ErrRoundTripMismatch, typ.Name(),
			typ.ToLoggableStringAny(value), typ.ToLoggableStringAny(got))
	}
	dbLogf("db: round trip of %s on %s ok", typ.Name(), s.Dialect().Name())
	return got, nil
}
