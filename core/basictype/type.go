// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package basictype pairs a value descriptor with a SQL descriptor under a
// registered name. A basic type is an immutable value: it owns no state of
// its own and delegates every conversion to the two shared descriptors it
// was built from.
package basictype

import (
	"fmt"
	"reflect"

	"github.com/toeirei/typemap/core/descriptor"
	"github.com/toeirei/typemap/core/descriptor/sqltype"
	"github.com/toeirei/typemap/core/descriptor/valuetype"
)

// Options are the wrapper options plus the dialect's chance to substitute
// the SQL descriptor. A nil Options uses descriptor.DefaultOptions and no
// remapping.
type Options interface {
	descriptor.WrapperOptions
	RemapSQLDescriptor(d sqltype.Descriptor) sqltype.Descriptor
}

// Type is the untyped view of a basic type used by registries, the storage
// layer and the CLI.
type Type interface {
	Name() string
	RegistrationKeys() []string
	SQLDescriptor() sqltype.Descriptor
	// SQLDescriptorFor is the descriptor actually used under opts.
	SQLDescriptorFor(opts Options) sqltype.Descriptor
	ValueDescriptorName() string
	GoType() reflect.Type

	BindAny(value any, opts Options) (any, error)
	NewScanTarget(opts Options) any
	// ExtractAny returns nil for SQL NULL.
	ExtractAny(target any, opts Options) (any, error)
	IsEqualAny(a, b any) bool
	FromStringAny(s string) (any, error)
	ToLoggableStringAny(v any) string
}

// Basic is a named pairing of a SQL descriptor and a value descriptor.
type Basic[T any] struct {
	name  string
	keys  []string
	sql   sqltype.Descriptor
	value valuetype.Descriptor[T]
}

// Option customizes New.
type Option func(*settings)

type settings struct {
	underGoType bool
	extraKeys   []string
}

// RegisterUnderGoType also registers the type under the Go type name of T.
func RegisterUnderGoType() Option {
	return func(s *settings) { s.underGoType = true }
}

// WithRegistrationKeys adds extra registry keys.
func WithRegistrationKeys(keys ...string) Option {
	return func(s *settings) { s.extraKeys = append(s.extraKeys, keys...) }
}

// New builds a basic type. The descriptors are shared, not copied.
func New[T any](name string, sql sqltype.Descriptor, value valuetype.Descriptor[T], opts ...Option) *Basic[T] {
	var s settings
	for _, o := range opts {
		o(&s)
	}
	candidates := []string{name}
	if s.underGoType {
		candidates = append(candidates, value.GoType().String())
	}
	candidates = append(candidates, s.extraKeys...)

	seen := make(map[string]struct{}, len(candidates))
	keys := make([]string, 0, len(candidates))
	for _, k := range candidates {
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return &Basic[T]{name: name, keys: keys, sql: sql, value: value}
}

func (b *Basic[T]) Name() string { return b.name }

func (b *Basic[T]) String() string { return b.name }

// RegistrationKeys returns a copy; the name is always first.
func (b *Basic[T]) RegistrationKeys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

func (b *Basic[T]) SQLDescriptor() sqltype.Descriptor { return b.sql }

func (b *Basic[T]) ValueDescriptor() valuetype.Descriptor[T] { return b.value }

func (b *Basic[T]) ValueDescriptorName() string { return b.value.Name() }

func (b *Basic[T]) GoType() reflect.Type { return b.value.GoType() }

func (b *Basic[T]) SQLDescriptorFor(opts Options) sqltype.Descriptor {
	if opts == nil || !b.sql.CanBeRemapped() {
		return b.sql
	}
	if d := opts.RemapSQLDescriptor(b.sql); d != nil {
		return d
	}
	return b.sql
}

func wrapperOptions(opts Options) descriptor.WrapperOptions {
	if opts == nil {
		return nil
	}
	return opts
}

// Bind returns the driver argument for value. A nil value binds SQL NULL.
func (b *Basic[T]) Bind(value *T, opts Options) (any, error) {
	if value == nil {
		return nil, nil
	}
	arg, err := b.SQLDescriptorFor(opts).Bind(*value, anyValue[T]{b.value}, wrapperOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", b.name, err)
	}
	return arg, nil
}

// NewScanTarget returns a scan destination matching Extract under opts.
func (b *Basic[T]) NewScanTarget(opts Options) any {
	return b.SQLDescriptorFor(opts).NewScanTarget()
}

// Extract converts a scanned target. SQL NULL yields nil.
func (b *Basic[T]) Extract(target any, opts Options) (*T, error) {
	v, ok, err := b.SQLDescriptorFor(opts).Extract(target, anyValue[T]{b.value}, wrapperOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", b.name, err)
	}
	if !ok {
		return nil, nil
	}
	t, isT := v.(T)
	if !isT {
		return nil, fmt.Errorf("extract %s: %w: got %T", b.name, descriptor.ErrUnknownWrap, v)
	}
	return &t, nil
}

func (b *Basic[T]) IsEqual(x, y *T) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return b.value.Equal(*x, *y)
}

// IsDirty reports whether current differs from the loaded snapshot.
func (b *Basic[T]) IsDirty(loaded, current *T) bool { return !b.IsEqual(loaded, current) }

func (b *Basic[T]) Compare(x, y T) int { return b.value.Compare(x, y) }

func (b *Basic[T]) Hash(v T) uint64 { return b.value.Hash(v) }

func (b *Basic[T]) DeepCopy(v *T) *T {
	if v == nil {
		return nil
	}
	c := b.value.Mutability().DeepCopy(*v)
	return &c
}

func (b *Basic[T]) ToLoggableString(v *T) string {
	if v == nil {
		return "null"
	}
	return b.value.ToString(*v)
}

func (b *Basic[T]) FromString(s string) (T, error) { return b.value.FromString(s) }

// BindAny accepts T, *T, nil, or anything the value descriptor can wrap.
func (b *Basic[T]) BindAny(value any, opts Options) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case T:
		return b.Bind(&v, opts)
	case *T:
		return b.Bind(v, opts)
	}
	w, err := b.value.Wrap(value, wrapperOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", b.name, err)
	}
	return b.Bind(&w, opts)
}

func (b *Basic[T]) ExtractAny(target any, opts Options) (any, error) {
	v, err := b.Extract(target, opts)
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}

func (b *Basic[T]) IsEqualAny(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	tx, okx := x.(T)
	ty, oky := y.(T)
	if !okx || !oky {
		return false
	}
	return b.value.Equal(tx, ty)
}

func (b *Basic[T]) FromStringAny(s string) (any, error) { return b.value.FromString(s) }

func (b *Basic[T]) ToLoggableStringAny(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case T:
		return b.value.ToString(t)
	case *T:
		return b.ToLoggableString(t)
	default:
		return fmt.Sprint(v)
	}
}

// anyValue adapts a typed value descriptor to the untyped hooks the SQL
// descriptors call.
type anyValue[T any] struct{ d valuetype.Descriptor[T] }

func (a anyValue[T]) Unwrap(value any, target descriptor.Target, opts descriptor.WrapperOptions) (any, error) {
	v, ok := value.(T)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not %s", descriptor.ErrUnknownUnwrap, value, a.d.GoType())
	}
	return a.d.Unwrap(v, target, opts)
}

func (a anyValue[T]) Wrap(raw any, opts descriptor.WrapperOptions) (any, error) {
	return a.d.Wrap(raw, opts)
}
