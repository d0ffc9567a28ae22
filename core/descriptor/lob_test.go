// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package descriptor

import (
	"errors"
	"strings"
	"testing"
)

func TestNClob_ValueAndScan(t *testing.T) {
	v, err := NClob{String: "x", Valid: true}.Value()
	if err != nil || v != "x" {
		t.Fatalf("Value = %v, %v", v, err)
	}
	v, err = NClob{}.Value()
	if err != nil || v != nil {
		t.Fatalf("invalid NClob should bind NULL, got %v, %v", v, err)
	}

	var n NClob
	if err := n.Scan([]byte("bytes")); err != nil || !n.Valid || n.String != "bytes" {
		t.Fatalf("Scan([]byte) = %+v, %v", n, err)
	}
	if err := n.Scan(nil); err != nil || n.Valid {
		t.Fatalf("Scan(nil) = %+v, %v", n, err)
	}
	if err := n.Scan(3.5); !errors.Is(err, ErrUnknownWrap) {
		t.Fatalf("Scan(float) error = %v", err)
	}

	var c Clob
	if err := c.Scan("s"); err != nil || !c.Valid || c.String != "s" {
		t.Fatalf("Clob Scan = %+v, %v", c, err)
	}
}

func TestCharacterStream_Value(t *testing.T) {
	v, err := NewCharacterStream("hello").Value()
	if err != nil || v != "hello" {
		t.Fatalf("Value = %v, %v", v, err)
	}
	v, err = CharacterStream{Reader: strings.NewReader("hello world"), Length: 5}.Value()
	if err != nil || v != "hello" {
		t.Fatalf("limited Value = %v, %v", v, err)
	}
	v, err = CharacterStream{Reader: strings.NewReader("to the end"), Length: -1}.Value()
	if err != nil || v != "to the end" {
		t.Fatalf("unbounded Value = %v, %v", v, err)
	}
	v, err = CharacterStream{}.Value()
	if err != nil || v != nil {
		t.Fatalf("nil reader should bind NULL, got %v, %v", v, err)
	}
}

func TestCharacterStream_LengthIsBytes(t *testing.T) {
	s := "Grüße 日本"
	cs := NewCharacterStream(s)
	if cs.Length != int64(len(s)) {
		t.Fatalf("Length = %d, want byte length %d", cs.Length, len(s))
	}
	v, err := cs.Value()
	if err != nil || v != s {
		t.Fatalf("Value = %q, %v", v, err)
	}
	// "Grü" is three characters but four bytes.
	v, err = CharacterStream{Reader: strings.NewReader(s), Length: 4}.Value()
	if err != nil || v != "Grü" {
		t.Fatalf("byte-limited Value = %q, %v", v, err)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := OrDefault(nil)
	if o.UseStreamForLobBinding() {
		t.Fatalf("default options must not stream")
	}
	if _, ok := o.LobCreator().CreateNClob("a").(NClob); !ok {
		t.Fatalf("default lob creator must produce NClob")
	}
	if _, ok := o.LobCreator().CreateClob("a").(Clob); !ok {
		t.Fatalf("default lob creator must produce Clob")
	}
	if TargetNClob.String() != "nclob" || Target(42).String() != "unknown" {
		t.Fatalf("unexpected target names")
	}
}
