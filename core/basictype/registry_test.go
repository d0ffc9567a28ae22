// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package basictype

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/typemap/core/descriptor/sqltype"
	"github.com/toeirei/typemap/core/descriptor/valuetype"
)

func TestStandardRegistry_NamesAreDistinct(t *testing.T) {
	names := map[string]Type{}
	for _, typ := range Standard() {
		prev, dup := names[typ.Name()]
		require.False(t, dup, "name %q used by %v and %v", typ.Name(), prev, typ)
		names[typ.Name()] = typ
	}

	r := NewStandardRegistry()
	for name, typ := range names {
		got, ok := r.Lookup(name)
		require.True(t, ok, "missing %s", name)
		assert.Same(t, typ, got)
	}
	assert.Len(t, r.Types(), len(Standard()))
}

func TestStandardRegistry_LookupMaterializedNClob(t *testing.T) {
	r := NewStandardRegistry()
	got, ok := r.Lookup("materialized_nclob")
	require.True(t, ok)
	assert.Same(t, MaterializedNClob, got)
	assert.Equal(t, sqltype.NCLOB, got.SQLDescriptor().SQLType())

	// "string" is claimed by the VARCHAR type via its Go type key.
	got, ok = r.Lookup("string")
	require.True(t, ok)
	assert.Same(t, String, got)
}

func TestRegistry_OverrideReplacesKey(t *testing.T) {
	r := NewStandardRegistry()
	replacement := New("materialized_nclob", sqltype.NClobStreamBinding, valuetype.String)
	r.Register(replacement)

	got := r.MustLookup("materialized_nclob")
	assert.Same(t, replacement, got)
	assert.Len(t, r.Types(), len(Standard()), "old instance is no longer reachable")
}

func TestRegistry_RegisterUnderAndKeys(t *testing.T) {
	r := NewRegistry()
	r.RegisterUnder(MaterializedNClob, "nclob_text", "", "materialized_nclob")
	r.RegisterUnder(nil, "ignored")

	assert.Equal(t, []string{"materialized_nclob", "nclob_text"}, r.Keys())
	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.Types(), 1)

	_, ok := r.Lookup("ignored")
	assert.False(t, ok)
	assert.Panics(t, func() { r.MustLookup("nope") })
}

func TestRegistry_IgnoresNilTypes(t *testing.T) {
	r := NewRegistry()
	var typedNil *Basic[string]
	r.Register(nil)
	r.Register(typedNil)
	r.RegisterUnder(typedNil, "ghost")

	_, ok := r.Lookup("ghost")
	assert.False(t, ok)
	assert.Empty(t, r.Keys())
	assert.NotPanics(t, func() { _ = r.Types() })
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewStandardRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%4 == 0 {
				r.RegisterUnder(MaterializedNClob, fmt.Sprintf("alias_%d", i))
				return
			}
			typ, ok := r.Lookup("materialized_nclob")
			if !ok || typ != Type(MaterializedNClob) {
				t.Errorf("lookup %d returned %v %v", i, typ, ok)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, len(Standard())+4, r.Len())
}

func TestGlobal_SingletonAndReset(t *testing.T) {
	ResetGlobal()
	defer ResetGlobal()

	g1 := Global()
	g2 := Global()
	assert.Same(t, g1, g2)
	_, ok := g1.Lookup("materialized_nclob")
	assert.True(t, ok)

	ResetGlobal()
	custom := NewRegistry()
	InitGlobal(custom)
	assert.Same(t, custom, Global())
	InitGlobal(NewRegistry())
	assert.Same(t, custom, Global(), "InitGlobal after first use has no effect")
}
