// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package dialect

import (
	"github.com/toeirei/typemap/core/descriptor/sqltype"
)

// HANA stores NCLOB natively and prefers streamed LOB parameters.
var HANA = register(&Dialect{
	name:       "hana",
	driverName: "hdb",
	columnTypes: map[sqltype.Code]string{
		sqltype.CHAR:         "char(1)",
		sqltype.NCHAR:        "nchar(1)",
		sqltype.VARCHAR:      "varchar(255)",
		sqltype.NVARCHAR:     "nvarchar(255)",
		sqltype.LONGVARCHAR:  "clob",
		sqltype.LONGNVARCHAR: "nclob",
		sqltype.CLOB:         "clob",
		sqltype.NCLOB:        "nclob",
		sqltype.BIGINT:       "bigint",
	},
	identityType: "bigint primary key",
	nationalized: true,
	streamLobs:   true,
	placeholder:  questionMark,
	quote:        `"`,
}, "hdb", "saphana")
