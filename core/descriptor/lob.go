// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package descriptor

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
)

// LobCreator builds the driver-facing value for a character LOB. Dialects
// whose drivers need a dedicated LOB type (Oracle) supply their own.
type LobCreator interface {
	CreateClob(s string) any
	CreateNClob(s string) any
}

type nonContextualLobCreator struct{}

func (nonContextualLobCreator) CreateClob(s string) any  { return Clob{String: s, Valid: true} }
func (nonContextualLobCreator) CreateNClob(s string) any { return NClob{String: s, Valid: true} }

// NonContextualLobCreator creates portable Clob/NClob values that any
// database/sql driver accepts as plain text.
var NonContextualLobCreator LobCreator = nonContextualLobCreator{}

// Clob is a driver-neutral character LOB value.
type Clob struct {
	String string
	Valid  bool
}

// Value implements driver.Valuer.
func (c Clob) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.String, nil
}

// Scan implements sql.Scanner.
func (c *Clob) Scan(src any) error {
	s, ok, err := scanText(src)
	c.String, c.Valid = s, ok
	return err
}

// NClob is a driver-neutral national character LOB value.
type NClob struct {
	String string
	Valid  bool
}

// Value implements driver.Valuer.
func (c NClob) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return c.String, nil
}

// Scan implements sql.Scanner.
func (c *NClob) Scan(src any) error {
	s, ok, err := scanText(src)
	c.String, c.Valid = s, ok
	return err
}

func scanText(src any) (string, bool, error) {
	switch v := src.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	default:
		return "", false, fmt.Errorf("%w: cannot scan %T into character LOB", ErrUnknownWrap, src)
	}
}

// CharacterStream binds a reader as a text parameter. database/sql drivers
// take values rather than readers, so the stream is drained when the driver
// asks for the value.
type CharacterStream struct {
	Reader io.Reader
	// Length is the number of bytes to read, not characters. A character
	// count for non-ASCII text would stop inside a multi-byte rune and bind
	// invalid UTF-8. A negative Length reads to EOF.
	Length int64
}

// NewCharacterStream wraps s as a stream whose Length is len(s) in bytes.
func NewCharacterStream(s string) CharacterStream {
	return CharacterStream{Reader: strings.NewReader(s), Length: int64(len(s))}
}

// Value implements driver.Valuer.
func (cs CharacterStream) Value() (driver.Value, error) {
	if cs.Reader == nil {
		return nil, nil
	}
	r := cs.Reader
	if cs.Length >= 0 {
		r = io.LimitReader(r, cs.Length)
	}
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return nil, fmt.Errorf("read character stream: %w", err)
	}
	return b.String(), nil
}
