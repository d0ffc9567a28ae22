// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sqltype describes how values travel to and from a column of one
// SQL type: which driver argument is bound and how scanned data is handed
// back to the value descriptor.
package sqltype

import "strconv"

// Code is a SQL type code. The numbering follows the JDBC constants so the
// codes line up with the names used in mapping files and dialect tables.
type Code int

const (
	CHAR         Code = 1
	VARCHAR      Code = 12
	LONGVARCHAR  Code = -1
	NCHAR        Code = -15
	NVARCHAR     Code = -9
	LONGNVARCHAR Code = -16
	CLOB         Code = 2005
	NCLOB        Code = 2011
	BIGINT       Code = -5
)

var codeNames = map[Code]string{
	CHAR:         "CHAR",
	VARCHAR:      "VARCHAR",
	LONGVARCHAR:  "LONGVARCHAR",
	NCHAR:        "NCHAR",
	NVARCHAR:     "NVARCHAR",
	LONGNVARCHAR: "LONGNVARCHAR",
	CLOB:         "CLOB",
	NCLOB:        "NCLOB",
	BIGINT:       "BIGINT",
}

func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// IsNationalized reports whether the code stores national character data.
func (c Code) IsNationalized() bool {
	switch c {
	case NCHAR, NVARCHAR, LONGNVARCHAR, NCLOB:
		return true
	}
	return false
}

// IsLob reports whether the code is a character LOB.
func (c Code) IsLob() bool {
	return c == CLOB || c == NCLOB
}
