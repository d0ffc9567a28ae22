// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package basictype

import (
	"fmt"
	"sort"
	"sync"

	"github.com/toeirei/typemap/internal/logging"
)

// Registry maps type names (and other registration keys) to basic types.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Type)}
}

// NewStandardRegistry returns a registry holding every built-in type.
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	for _, t := range Standard() {
		r.Register(t)
	}
	return r
}

// Register adds t under all of its registration keys.
func (r *Registry) Register(t Type) {
	if isNilType(t) {
		return
	}
	r.RegisterUnder(t, t.RegistrationKeys()...)
}

// RegisterUnder adds t under the given keys. A key already taken by another
// type is reassigned to t. Nil types, including typed nil pointers, are
// ignored.
func (r *Registry) RegisterUnder(t Type, keys ...string) {
	if isNilType(t) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		if key == "" {
			continue
		}
		if prev, ok := r.byKey[key]; ok && prev != t {
			logging.Debugf("type registration [%s] overrides previous: %s -> %s", key, prev.Name(), t.Name())
		}
		r.byKey[key] = t
	}
}

// isNilType reports whether t is nil or a typed nil whose methods cannot run.
func isNilType(t Type) (isNil bool) {
	if t == nil {
		return true
	}
	defer func() {
		if recover() != nil {
			isNil = true
		}
	}()
	_ = t.Name()
	return false
}

// Lookup returns the type registered under key.
func (r *Registry) Lookup(key string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byKey[key]
	return t, ok
}

// MustLookup is Lookup for wiring code where a missing type is a programming
// error.
func (r *Registry) MustLookup(key string) Type {
	t, ok := r.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("basictype: no type registered under %q", key))
	}
	return t
}

// Keys returns all registration keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Types returns each distinct registered type once, sorted by name.
func (r *Registry) Types() []Type {
	r.mu.RLock()
	seen := make(map[Type]struct{}, len(r.byKey))
	out := make([]Type, 0, len(r.byKey))
	for _, t := range r.byKey {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Len returns the number of registration keys.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byKey)
}

var (
	globalRegistry *Registry
	globalOnce     sync.Once
)

// Global returns the process registry, creating a standard one on first use.
func Global() *Registry {
	globalOnce.Do(func() {
		globalRegistry = NewStandardRegistry()
	})
	return globalRegistry
}

// InitGlobal installs r as the process registry. It only has an effect when
// called before the first Global.
func InitGlobal(r *Registry) {
	globalOnce.Do(func() {
		globalRegistry = r
	})
}

// ResetGlobal forgets the process registry. Tests only.
func ResetGlobal() {
	globalOnce = sync.Once{}
	globalRegistry = nil
}
