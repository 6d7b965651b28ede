package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email    string
		expected bool
	}{
		{"michael@mergington.edu", true},
		{"  michael@mergington.edu  ", true},
		{"first.last@sub.mergington.edu", true},
		{"michael@mergington", false},
		{"@mergington.edu", false},
		{"michael@", false},
		{"michael mergington.edu", false},
		{"michael@merg ington.edu", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidEmail(tt.email))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "michael@mergington.edu", NormalizeEmail("  Michael@Mergington.EDU "))
	assert.Equal(t, "a@b.c", NormalizeEmail("a@b.c"))
}

func TestAssertInvariant(t *testing.T) {
	assert.NotPanics(t, func() { AssertInvariant(true, "should not panic") })
	assert.PanicsWithValue(t, "invariant violated - boom", func() {
		AssertInvariant(false, "boom")
	})
}
