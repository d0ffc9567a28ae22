// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package sqltype

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/toeirei/typemap/core/descriptor"
)

// recorder is a value-side stand-in that records the requested target.
type recorder struct {
	target descriptor.Target
	err    error
}

func (r *recorder) Unwrap(value any, target descriptor.Target, _ descriptor.WrapperOptions) (any, error) {
	r.target = target
	if r.err != nil {
		return nil, r.err
	}
	return value, nil
}

func (r *recorder) Wrap(raw any, _ descriptor.WrapperOptions) (any, error) {
	if r.err != nil {
		return nil, r.err
	}
	return raw, nil
}

type streamOpts bool

func (s streamOpts) UseStreamForLobBinding() bool          { return bool(s) }
func (streamOpts) LobCreator() descriptor.LobCreator { return descriptor.NonContextualLobCreator }

func TestNClobBindingTargets(t *testing.T) {
	cases := []struct {
		name string
		d    Descriptor
		opts descriptor.WrapperOptions
		want descriptor.Target
	}{
		{"default without options", NClobDefault, nil, descriptor.TargetNClob},
		{"default lob binding", NClobDefault, streamOpts(false), descriptor.TargetNClob},
		{"default stream binding", NClobDefault, streamOpts(true), descriptor.TargetCharacterStream},
		{"explicit nclob", NClobBinding, streamOpts(true), descriptor.TargetNClob},
		{"explicit stream", NClobStreamBinding, streamOpts(false), descriptor.TargetCharacterStream},
		{"string", NClobStringBinding, streamOpts(true), descriptor.TargetString},
		{"clob default", ClobDefault, nil, descriptor.TargetClob},
		{"clob stream", ClobDefault, streamOpts(true), descriptor.TargetCharacterStream},
		{"clob string", ClobStringBinding, nil, descriptor.TargetString},
		{"varchar", Varchar, streamOpts(true), descriptor.TargetString},
		{"nvarchar", NVarchar, nil, descriptor.TargetString},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &recorder{}
			if _, err := tc.d.Bind("v", r, tc.opts); err != nil {
				t.Fatalf("Bind: %v", err)
			}
			if r.target != tc.want {
				t.Fatalf("target = %s, want %s", r.target, tc.want)
			}
		})
	}
}

func TestBindWrapsUnwrapError(t *testing.T) {
	r := &recorder{err: descriptor.ErrUnknownUnwrap}
	_, err := NClobDefault.Bind("v", r, nil)
	if !errors.Is(err, descriptor.ErrUnknownUnwrap) {
		t.Fatalf("expected wrapped ErrUnknownUnwrap, got %v", err)
	}
}

func TestExtractMaterializesAndHandlesNull(t *testing.T) {
	r := &recorder{}
	target := NClobDefault.NewScanTarget()
	ns, ok := target.(*sql.NullString)
	if !ok {
		t.Fatalf("scan target is %T, want *sql.NullString", target)
	}

	v, ok, err := NClobDefault.Extract(ns, r, nil)
	if err != nil || ok || v != nil {
		t.Fatalf("NULL extract: got %v %v %v", v, ok, err)
	}

	ns.String, ns.Valid = "текст", true
	v, ok, err = NClobDefault.Extract(ns, r, nil)
	if err != nil || !ok || v != "текст" {
		t.Fatalf("value extract: got %v %v %v", v, ok, err)
	}

	if _, _, err := NClobDefault.Extract(new(string), r, nil); err == nil {
		t.Fatalf("expected error for foreign scan target")
	}
}

func TestCodes(t *testing.T) {
	if NCLOB != 2011 || CLOB != 2005 || NVARCHAR != -9 {
		t.Fatalf("type codes drifted from the JDBC numbering")
	}
	if NCLOB.String() != "NCLOB" || Code(777).String() != "Code(777)" {
		t.Fatalf("unexpected code names: %s %s", NCLOB, Code(777))
	}
	if !NCLOB.IsNationalized() || CLOB.IsNationalized() || !NCLOB.IsLob() || VARCHAR.IsLob() {
		t.Fatalf("code classification wrong")
	}
	if NClobDefault.SQLType() != NCLOB || !NClobDefault.CanBeRemapped() {
		t.Fatalf("NClobDefault must be a remappable NCLOB descriptor")
	}
}
