// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package dialect

import (
	"strconv"

	go_ora "github.com/sijms/go-ora/v2"
	"github.com/toeirei/typemap/core/descriptor/sqltype"
)

// oracleLobCreator hands go-ora its own LOB types so NCLOB parameters are
// sent in the national character set.
type oracleLobCreator struct{}

func (oracleLobCreator) CreateClob(s string) any {
	return go_ora.Clob{String: s, Valid: true}
}

func (oracleLobCreator) CreateNClob(s string) any {
	return go_ora.NClob{String: s, Valid: true}
}

var Oracle = register(&Dialect{
	name:       "oracle",
	driverName: "oracle",
	columnTypes: map[sqltype.Code]string{
		sqltype.CHAR:         "char(1 char)",
		sqltype.NCHAR:        "nchar(1)",
		sqltype.VARCHAR:      "varchar2(255 char)",
		sqltype.NVARCHAR:     "nvarchar2(255)",
		sqltype.LONGVARCHAR:  "clob",
		sqltype.LONGNVARCHAR: "nclob",
		sqltype.CLOB:         "clob",
		sqltype.NCLOB:        "nclob",
		sqltype.BIGINT:       "number(19,0)",
	},
	identityType: "number(19,0) primary key",
	nationalized: true,
	lobCreator:   oracleLobCreator{},
	placeholder:  func(n int) string { return ":" + strconv.Itoa(n) },
	quote:        `"`,
}, "go_ora")
