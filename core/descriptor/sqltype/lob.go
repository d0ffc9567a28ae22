// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package sqltype

import (
	"database/sql"

	"github.com/toeirei/typemap/core/descriptor"
)

type lobBinding int

const (
	// bindDefault picks bindStream or bindLob from the wrapper options.
	bindDefault lobBinding = iota
	bindLob
	bindStream
	bindString
)

// lobDescriptor covers CLOB and NCLOB. The binding strategy decides what
// the value descriptor is asked to unwrap into; extraction always
// materializes the full column value.
type lobDescriptor struct {
	name    string
	code    Code
	lob     descriptor.Target
	binding lobBinding
}

func (d lobDescriptor) Name() string        { return d.name }
func (d lobDescriptor) SQLType() Code       { return d.code }
func (d lobDescriptor) CanBeRemapped() bool { return true }

func (d lobDescriptor) target(opts descriptor.WrapperOptions) descriptor.Target {
	switch d.binding {
	case bindStream:
		return descriptor.TargetCharacterStream
	case bindString:
		return descriptor.TargetString
	case bindLob:
		return d.lob
	}
	if descriptor.OrDefault(opts).UseStreamForLobBinding() {
		return descriptor.TargetCharacterStream
	}
	return d.lob
}

func (d lobDescriptor) Bind(value any, u Unwrapper, opts descriptor.WrapperOptions) (any, error) {
	return unwrapAs(d.code, value, d.target(opts), u, opts)
}

func (d lobDescriptor) NewScanTarget() any { return new(sql.NullString) }

func (d lobDescriptor) Extract(target any, w Wrapper, opts descriptor.WrapperOptions) (any, bool, error) {
	return textExtract(d.code, target, w, opts)
}

var (
	// NClobDefault binds through a character stream when the options ask
	// for stream binding and through the dialect's NCLOB value otherwise.
	NClobDefault Descriptor = lobDescriptor{name: "nclob", code: NCLOB, lob: descriptor.TargetNClob, binding: bindDefault}
	// NClobBinding always binds the dialect's NCLOB value.
	NClobBinding Descriptor = lobDescriptor{name: "nclob_binding", code: NCLOB, lob: descriptor.TargetNClob, binding: bindLob}
	// NClobStreamBinding always binds a character stream.
	NClobStreamBinding Descriptor = lobDescriptor{name: "nclob_stream_binding", code: NCLOB, lob: descriptor.TargetNClob, binding: bindStream}
	// NClobStringBinding binds plain text, for databases without a native NCLOB.
	NClobStringBinding Descriptor = lobDescriptor{name: "nclob_string_binding", code: NCLOB, lob: descriptor.TargetNClob, binding: bindString}

	ClobDefault       Descriptor = lobDescriptor{name: "clob", code: CLOB, lob: descriptor.TargetClob, binding: bindDefault}
	ClobBinding       Descriptor = lobDescriptor{name: "clob_binding", code: CLOB, lob: descriptor.TargetClob, binding: bindLob}
	ClobStreamBinding Descriptor = lobDescriptor{name: "clob_stream_binding", code: CLOB, lob: descriptor.TargetClob, binding: bindStream}
	ClobStringBinding Descriptor = lobDescriptor{name: "clob_string_binding", code: CLOB, lob: descriptor.TargetClob, binding: bindString}
)
