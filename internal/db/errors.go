// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicate is returned when attempting to insert a record that already exists.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned by Load when no row has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTable is returned for tables without a name or columns.
	ErrInvalidTable = errors.New("invalid table definition")
	// ErrRoundTripMismatch is returned by RoundTrip when the value read back
	// differs from the value written.
	ErrRoundTripMismatch = errors.New("round trip mismatch")
)

// MapDBError inspects low-level driver errors and maps common constraint
// violations to package-level sentinel errors (like ErrDuplicate). This is a
// conservative, string-based mapping to avoid importing SQL driver packages
// into this package file.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique
	// constraint, Oracle ORA-00001, HANA error 301
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") ||
		strings.Contains(le, "23505") || strings.Contains(le, "1062") ||
		strings.Contains(le, "ora-00001") || strings.Contains(le, "sql error 301") {
		return ErrDuplicate
	}
	return err
}
