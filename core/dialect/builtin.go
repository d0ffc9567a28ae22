// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package dialect

import (
	"strconv"

	"github.com/toeirei/typemap/core/descriptor/sqltype"
)

// textOnlyRemaps sends character LOBs as plain text on databases that store
// them in an ordinary text column.
var textOnlyRemaps = map[sqltype.Code]sqltype.Descriptor{
	sqltype.CLOB:  sqltype.ClobStringBinding,
	sqltype.NCLOB: sqltype.NClobStringBinding,
}

var SQLite = register(&Dialect{
	name:       "sqlite",
	driverName: "sqlite",
	columnTypes: map[sqltype.Code]string{
		sqltype.CHAR:         "char(1)",
		sqltype.NCHAR:        "nchar(1)",
		sqltype.VARCHAR:      "varchar(255)",
		sqltype.NVARCHAR:     "nvarchar(255)",
		sqltype.LONGVARCHAR:  "text",
		sqltype.LONGNVARCHAR: "text",
		sqltype.CLOB:         "text",
		sqltype.NCLOB:        "text",
		sqltype.BIGINT:       "integer",
	},
	identityType: "integer primary key",
	remaps:       textOnlyRemaps,
	dropIfExists: true,
	placeholder:  questionMark,
	quote:        `"`,
}, "sqlite3")

var Postgres = register(&Dialect{
	name:       "postgres",
	driverName: "pgx",
	columnTypes: map[sqltype.Code]string{
		sqltype.CHAR:         "char(1)",
		sqltype.NCHAR:        "char(1)",
		sqltype.VARCHAR:      "varchar(255)",
		sqltype.NVARCHAR:     "varchar(255)",
		sqltype.LONGVARCHAR:  "text",
		sqltype.LONGNVARCHAR: "text",
		sqltype.CLOB:         "text",
		sqltype.NCLOB:        "text",
		sqltype.BIGINT:       "bigint",
	},
	identityType: "bigint primary key",
	remaps:       textOnlyRemaps,
	dropIfExists: true,
	placeholder:  func(n int) string { return "$" + strconv.Itoa(n) },
	quote:        `"`,
}, "postgresql", "pgx")

var MySQL = register(&Dialect{
	name:       "mysql",
	driverName: "mysql",
	columnTypes: map[sqltype.Code]string{
		sqltype.CHAR:         "char(1)",
		sqltype.NCHAR:        "char(1) character set utf8mb4",
		sqltype.VARCHAR:      "varchar(255)",
		sqltype.NVARCHAR:     "varchar(255) character set utf8mb4",
		sqltype.LONGVARCHAR:  "longtext",
		sqltype.LONGNVARCHAR: "longtext character set utf8mb4",
		sqltype.CLOB:         "longtext",
		sqltype.NCLOB:        "longtext character set utf8mb4",
		sqltype.BIGINT:       "bigint",
	},
	identityType: "bigint primary key",
	remaps:       textOnlyRemaps,
	nationalized: true,
	dropIfExists: true,
	placeholder:  questionMark,
	quote:        "`",
}, "mariadb")
