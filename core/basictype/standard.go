// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package basictype

import (
	"github.com/toeirei/typemap/core/descriptor/sqltype"
	"github.com/toeirei/typemap/core/descriptor/valuetype"
)

// Text-bearing standard types. Only String is registered under the Go type
// name, so a lookup by "string" resolves to VARCHAR.
var (
	String           = New("string", sqltype.Varchar, valuetype.String, RegisterUnderGoType())
	NString          = New("nstring", sqltype.NVarchar, valuetype.String)
	Text             = New("text", sqltype.LongVarchar, valuetype.String)
	NText            = New("ntext", sqltype.LongNVarchar, valuetype.String)
	MaterializedClob = New("materialized_clob", sqltype.ClobDefault, valuetype.String)
)

// Standard returns the built-in types in registration order.
func Standard() []Type {
	return []Type{
		String,
		NString,
		Text,
		NText,
		MaterializedClob,
		MaterializedNClob,
	}
}
