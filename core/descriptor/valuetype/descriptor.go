// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// Package valuetype describes how a Go value is represented in memory:
// how it is wrapped from raw driver data, unwrapped into bindable forms,
// compared, hashed, copied and rendered as text.
package valuetype

import (
	"reflect"

	"github.com/toeirei/typemap/core/descriptor"
)

// Descriptor is the in-memory half of a basic type.
type Descriptor[T any] interface {
	// Name identifies the descriptor in diagnostics.
	Name() string
	// GoType is the reflected type of T.
	GoType() reflect.Type

	// Wrap converts raw data (driver output, readers, LOB values) into T.
	Wrap(raw any, opts descriptor.WrapperOptions) (T, error)
	// Unwrap converts v into the requested target representation.
	Unwrap(v T, target descriptor.Target, opts descriptor.WrapperOptions) (any, error)

	Equal(a, b T) bool
	Compare(a, b T) int
	Hash(v T) uint64

	ToString(v T) string
	FromString(s string) (T, error)

	Mutability() MutabilityPlan[T]
}

// MutabilityPlan tells callers whether values need copying before they are
// cached or compared later for dirtiness.
type MutabilityPlan[T any] interface {
	IsMutable() bool
	DeepCopy(v T) T
}

type immutable[T any] struct{}

func (immutable[T]) IsMutable() bool  { return false }
func (immutable[T]) DeepCopy(v T) T   { return v }

// Immutable returns the plan for value types that never change after
// construction; copies are the value itself.
func Immutable[T any]() MutabilityPlan[T] { return immutable[T]{} }
