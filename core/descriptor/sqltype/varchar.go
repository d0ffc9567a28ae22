// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package sqltype

import (
	"database/sql"

	"github.com/toeirei/typemap/core/descriptor"
)

// textDescriptor binds plain text parameters for the character types that
// drivers accept as Go strings.
type textDescriptor struct {
	name string
	code Code
}

func (d textDescriptor) Name() string        { return d.name }
func (d textDescriptor) SQLType() Code       { return d.code }
func (d textDescriptor) CanBeRemapped() bool { return true }

func (d textDescriptor) Bind(value any, u Unwrapper, opts descriptor.WrapperOptions) (any, error) {
	return unwrapAs(d.code, value, descriptor.TargetString, u, opts)
}

func (d textDescriptor) NewScanTarget() any { return new(sql.NullString) }

func (d textDescriptor) Extract(target any, w Wrapper, opts descriptor.WrapperOptions) (any, bool, error) {
	return textExtract(d.code, target, w, opts)
}

var (
	Char         Descriptor = textDescriptor{name: "char", code: CHAR}
	NChar        Descriptor = textDescriptor{name: "nchar", code: NCHAR}
	Varchar      Descriptor = textDescriptor{name: "varchar", code: VARCHAR}
	NVarchar     Descriptor = textDescriptor{name: "nvarchar", code: NVARCHAR}
	LongVarchar  Descriptor = textDescriptor{name: "longvarchar", code: LONGVARCHAR}
	LongNVarchar Descriptor = textDescriptor{name: "longnvarchar", code: LONGNVARCHAR}
)
