// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package valuetype

import (
	"database/sql"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/toeirei/typemap/core/descriptor"
)

type stringDescriptor struct{}

// String describes Go strings. It is shared by every text-bearing basic type.
var String Descriptor[string] = stringDescriptor{}

func (stringDescriptor) Name() string         { return "string" }
func (stringDescriptor) GoType() reflect.Type { return reflect.TypeOf("") }

func (stringDescriptor) Wrap(raw any, _ descriptor.WrapperOptions) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case *string:
		if v == nil {
			return "", fmt.Errorf("%w: nil *string", descriptor.ErrUnknownWrap)
		}
		return *v, nil
	case []byte:
		return string(v), nil
	case sql.NullString:
		return v.String, nil
	case descriptor.NClob:
		return v.String, nil
	case descriptor.Clob:
		return v.String, nil
	case io.Reader:
		return extractString(v)
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %T to string", descriptor.ErrUnknownWrap, raw)
	}
}

func extractString(r io.Reader) (string, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return "", fmt.Errorf("read string from stream: %w", err)
	}
	return b.String(), nil
}

func (stringDescriptor) Unwrap(v string, target descriptor.Target, opts descriptor.WrapperOptions) (any, error) {
	switch target {
	case descriptor.TargetString:
		return v, nil
	case descriptor.TargetBytes:
		return []byte(v), nil
	case descriptor.TargetReader:
		return strings.NewReader(v), nil
	case descriptor.TargetCharacterStream:
		return descriptor.NewCharacterStream(v), nil
	case descriptor.TargetClob:
		return descriptor.OrDefault(opts).LobCreator().CreateClob(v), nil
	case descriptor.TargetNClob:
		return descriptor.OrDefault(opts).LobCreator().CreateNClob(v), nil
	default:
		return nil, fmt.Errorf("%w: string to %s", descriptor.ErrUnknownUnwrap, target)
	}
}

func (stringDescriptor) Equal(a, b string) bool    { return a == b }
func (stringDescriptor) Compare(a, b string) int   { return strings.Compare(a, b) }
func (stringDescriptor) Hash(v string) uint64      { return xxhash.Sum64String(v) }
func (stringDescriptor) ToString(v string) string  { return v }
func (stringDescriptor) FromString(s string) (string, error) {
	return s, nil
}

func (stringDescriptor) Mutability() MutabilityPlan[string] { return Immutable[string]() }
