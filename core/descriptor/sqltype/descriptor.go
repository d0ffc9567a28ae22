// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package sqltype

import (
	"database/sql"
	"fmt"

	"github.com/toeirei/typemap/core/descriptor"
)

// Unwrapper is the part of a value descriptor a binder needs.
type Unwrapper interface {
	Unwrap(value any, target descriptor.Target, opts descriptor.WrapperOptions) (any, error)
}

// Wrapper is the part of a value descriptor an extractor needs.
type Wrapper interface {
	Wrap(raw any, opts descriptor.WrapperOptions) (any, error)
}

// Descriptor is the column half of a basic type. Implementations are
// stateless and shared.
type Descriptor interface {
	// Name distinguishes binding variants of the same SQL type.
	Name() string
	SQLType() Code
	// CanBeRemapped reports whether a dialect may substitute another
	// descriptor for this one.
	CanBeRemapped() bool

	// Bind turns a non-nil value into a driver argument.
	Bind(value any, u Unwrapper, opts descriptor.WrapperOptions) (any, error)
	// NewScanTarget returns a fresh destination for rows.Scan.
	NewScanTarget() any
	// Extract converts a scanned target. ok is false for SQL NULL.
	Extract(target any, w Wrapper, opts descriptor.WrapperOptions) (value any, ok bool, err error)
}

// textExtract materializes a text column: the whole value is read into
// memory before the value descriptor sees it.
func textExtract(code Code, target any, w Wrapper, opts descriptor.WrapperOptions) (any, bool, error) {
	ns, ok := target.(*sql.NullString)
	if !ok {
		return nil, false, fmt.Errorf("%s extract: unexpected scan target %T", code, target)
	}
	if !ns.Valid {
		return nil, false, nil
	}
	v, err := w.Wrap(ns.String, opts)
	if err != nil {
		return nil, false, fmt.Errorf("%s extract: %w", code, err)
	}
	return v, true, nil
}

func unwrapAs(code Code, value any, target descriptor.Target, u Unwrapper, opts descriptor.WrapperOptions) (any, error) {
	v, err := u.Unwrap(value, target, opts)
	if err != nil {
		return nil, fmt.Errorf("%s bind: %w", code, err)
	}
	return v, nil
}
