package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionGetters(t *testing.T) {
	opts := map[string]any{
		"style":   "kebab",
		"strict":  true,
		"max":     float64(8),
		"min":     int64(2),
		"keys":    []any{"password", 42, "secret"},
		"aliases": []string{"a", "b"},
	}

	assert.Equal(t, "kebab", GetStringOption(opts, "style", "snake"))
	assert.Equal(t, "snake", GetStringOption(opts, "missing", "snake"))
	assert.Equal(t, "snake", GetStringOption(opts, "strict", "snake"), "wrong type falls back")

	assert.True(t, GetBoolOption(opts, "strict", false))
	assert.False(t, GetBoolOption(opts, "missing", false))

	assert.Equal(t, 8, GetIntOption(opts, "max", 10), "float64 narrows")
	assert.Equal(t, 2, GetIntOption(opts, "min", 10), "int64 narrows")
	assert.Equal(t, 10, GetIntOption(opts, "style", 10), "wrong type falls back")

	assert.Equal(t, []string{"password", "secret"}, GetStringSliceOption(opts, "keys", nil),
		"non-string elements are dropped")
	assert.Equal(t, []string{"a", "b"}, GetStringSliceOption(opts, "aliases", nil))
	assert.Nil(t, GetStringSliceOption(opts, "missing", nil))

	// Nil maps behave like empty maps.
	assert.Equal(t, 5, GetIntOption(nil, "max", 5))
	assert.Equal(t, "x", GetOption[string](nil, "style", "x"))
}
