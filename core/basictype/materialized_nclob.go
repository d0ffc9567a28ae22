// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package basictype

import (
	"github.com/toeirei/typemap/core/descriptor/sqltype"
	"github.com/toeirei/typemap/core/descriptor/valuetype"
)

// MaterializedNClobName is the registry name of MaterializedNClob.
const MaterializedNClobName = "materialized_nclob"

// MaterializedNClob maps an NCLOB column to a Go string. The column value
// is read into memory in full on extraction.
var MaterializedNClob = New(MaterializedNClobName, sqltype.NClobDefault, valuetype.String)
