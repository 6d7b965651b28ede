package core

import (
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_ValidPrefix(t *testing.T) {
	testCases := []struct {
		name     string
		prefix   string
		expected string
	}{
		{
			name:     "simple prefix",
			prefix:   "t",
			expected: "t",
		},
		{
			name:     "uppercase prefix gets lowercased",
			prefix:   "ACT",
			expected: "act",
		},
		{
			name:     "prefix with surrounding whitespace gets trimmed",
			prefix:   "  ann  ",
			expected: "ann",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := NewID(tc.prefix)

			parts := strings.Split(id, "_")
			require.Len(t, parts, 2, "ID should have exactly one underscore separator")
			assert.Equal(t, tc.expected, parts[0])

			// The ULID part must be parseable
			_, err := ulid.Parse(parts[1])
			assert.NoError(t, err)
		})
	}
}

func TestNewID_EmptyPrefixPanics(t *testing.T) {
	assert.Panics(t, func() { NewID("") })
	assert.Panics(t, func() { NewID("   ") })
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID("t")
		require.False(t, seen[id], "generated duplicate ID: %s", id)
		seen[id] = true
	}
}

func TestIsValidULID(t *testing.T) {
	testCases := []struct {
		name  string
		id    string
		valid bool
	}{
		{"valid generated ID", NewID("act"), true},
		{"empty string", "", false},
		{"no separator", "t01G0EZ1XTM37C5X11SQTDNCTM1", false},
		{"empty prefix", "_01G0EZ1XTM37C5X11SQTDNCTM1", false},
		{"uppercase prefix", "T_01G0EZ1XTM37C5X11SQTDNCTM1", false},
		{"short ULID part", "t_01G0EZ1XTM", false},
		{"invalid ULID characters", "t_01G0EZ1XTM37C5X11SQTDNCTIL", false},
		{"multiple separators", "t_act_01G0EZ1XTM37C5X11SQTDNCTM1", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValidULID(tc.id))
		})
	}
}
