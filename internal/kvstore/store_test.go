package kvstore

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	s := New(nil)

	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"string value", "greeting", "hello"},
		{"numeric value", "answer", 42},
		{"nil value", "nothing", nil},
		{"nested value", "config", map[string]any{"server_name": "mcpbase", "version": "1.0.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Set(tt.key, tt.value)
			got, ok := s.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestGetMissing(t *testing.T) {
	s := New(nil)

	v, ok := s.Get("absent")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestStoredNilDistinguishableFromMissing(t *testing.T) {
	s := New(nil)
	s.Set("explicit_nil", nil)

	_, ok := s.Get("explicit_nil")
	assert.True(t, ok)

	_, ok = s.Get("never_set")
	assert.False(t, ok)
}

func TestSetOverwrites(t *testing.T) {
	s := New(map[string]any{"counter": 0})

	s.Set("counter", 1)
	got, ok := s.Get("counter")
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, 1, s.Len())
}

func TestDelete(t *testing.T) {
	s := New(map[string]any{"counter": 0})

	assert.True(t, s.Delete("counter"))
	_, ok := s.Get("counter")
	assert.False(t, ok)

	// Idempotent: deleting again reports false, no error.
	assert.False(t, s.Delete("counter"))
	assert.False(t, s.Delete("never_existed"))
}

func TestCounterLifecycle(t *testing.T) {
	s := New(map[string]any{"counter": 0})

	got, ok := s.Get("counter")
	require.True(t, ok)
	assert.Equal(t, 0, got)

	s.Set("counter", 1)
	got, ok = s.Get("counter")
	require.True(t, ok)
	assert.Equal(t, 1, got)

	assert.True(t, s.Delete("counter"))
	_, ok = s.Get("counter")
	assert.False(t, ok)
}

func TestKeysSorted(t *testing.T) {
	s := New(map[string]any{"zebra": 1, "alpha": 2, "mango": 3})

	assert.Equal(t, []string{"alpha", "mango", "zebra"}, s.Keys())
}

func TestDescribe(t *testing.T) {
	s := New(map[string]any{"a": 1, "b": 2})

	info := s.Describe()
	assert.Equal(t, Description, info.Description)
	assert.Equal(t, []string{"get", "set", "list", "delete"}, info.Operations)
	assert.Equal(t, []string{"a", "b"}, info.CurrentKeys)
	assert.Equal(t, 2, info.Count)

	// Count always tracks the key list.
	s.Delete("a")
	info = s.Describe()
	assert.Len(t, info.CurrentKeys, info.Count)
}

func TestDescribeEmptyStore(t *testing.T) {
	s := New(nil)

	info := s.Describe()
	assert.Empty(t, info.CurrentKeys)
	assert.Zero(t, info.Count)
}

func TestMarshalIndentRoundTrip(t *testing.T) {
	s := New(map[string]any{"example_key": "example_value", "counter": 0})

	data, err := s.MarshalIndent()
	require.NoError(t, err)

	var parsed Info
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, s.Describe(), parsed)

	// Deterministic: identical state serializes identically.
	again, err := s.MarshalIndent()
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestSeedCopied(t *testing.T) {
	seed := map[string]any{"k": "v"}
	s := New(seed)

	seed["k"] = "mutated"
	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestConcurrentAccess(t *testing.T) {
	s := New(nil)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			s.Set(key, i)
			s.Get(key)
			s.Describe()
			s.Delete(key)
		}()
	}
	wg.Wait()

	assert.Zero(t, s.Len())
}
