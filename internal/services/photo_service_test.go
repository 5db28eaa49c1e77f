package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBounds() ExpiryBounds {
	return ExpiryBounds{Default: 600, Min: 60, Max: 3600}
}

func TestResolveExpiry(t *testing.T) {
	s := &PhotoService{bounds: testBounds()}

	cases := []struct {
		raw  string
		want int
	}{
		{"", 600},          // absent -> default
		{"abc", 600},       // non-numeric -> default
		{"12px", 600},      // non-numeric -> default
		{"0", 60},          // below floor -> clamped up
		{"30", 60},         // below floor -> clamped up
		{"-500", 60},       // negative -> clamped up
		{"60", 60},         // floor is inclusive
		{"600", 600},       // passthrough
		{"3600", 3600},     // ceiling is inclusive
		{"10000", 3600},    // above ceiling -> clamped down
		{"120.9", 120},     // fractional seconds truncate
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, s.ResolveExpiry(tc.raw), "raw %q", tc.raw)
	}
}

func TestResolveExpiryAlwaysInWindow(t *testing.T) {
	s := &PhotoService{bounds: testBounds()}

	for _, raw := range []string{"", "0", "30", "10000", "nope", "3601", "59"} {
		got := s.ResolveExpiry(raw)
		assert.GreaterOrEqual(t, got, 60)
		assert.LessOrEqual(t, got, 3600)
	}
}
