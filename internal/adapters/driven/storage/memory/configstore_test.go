package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
}

func TestNewConfigStoreFrom_CopiesSeed(t *testing.T) {
	seed := map[string]any{"render.color": "never"}
	store := NewConfigStoreFrom(seed)

	seed["render.color"] = "always"
	assert.Equal(t, "never", store.GetString("render.color"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStoreFrom(map[string]any{
		"library.path": "/tmp/library.yaml",
		"render.notes": true,
		"int":          42,
		"int64":        int64(7),
		"float":        float64(3),
		"strings":      []string{"a", "b"},
		"anys":         []any{"a", 1, "b"},
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("library.path"), "/tmp/library.yaml"},
		{"string wrong type", store.GetString("render.notes"), ""},
		{"string missing", store.GetString("missing"), ""},
		{"bool", store.GetBool("render.notes"), true},
		{"bool wrong type", store.GetBool("library.path"), false},
		{"int", store.GetInt("int"), 42},
		{"int from int64", store.GetInt("int64"), 7},
		{"int from float64", store.GetInt("float"), 3},
		{"int wrong type", store.GetInt("library.path"), 0},
		{"string slice", store.GetStringSlice("strings"), []string{"a", "b"}},
		{"any slice keeps strings", store.GetStringSlice("anys"), []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_SetOverwrites(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("render.color", "auto"))
	require.NoError(t, store.Set("render.color", "never"))

	val, ok := store.Get("render.color")
	require.True(t, ok)
	assert.Equal(t, "never", val)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("lint.strict", n%2 == 0)
			_ = store.GetBool("lint.strict")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("lint.strict")
	assert.True(t, ok)
}
