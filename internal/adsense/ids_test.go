package adsense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublisherID(t *testing.T) {
	cases := map[string]bool{
		"pub-1234567890123456":    true,
		"":                        false,
		"pub-123":                 false,
		"1234567890123456":        false,
		"ca-pub-1234567890123456": false,
		"pub-12345678901234567":   false,
		"pub-123456789012345a":    false,
		" pub-1234567890123456":   false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsPublisherID(in), "IsPublisherID(%q)", in)
	}
}

func TestIsSlotID(t *testing.T) {
	cases := map[string]bool{
		"1234567890":   true,
		"":             false,
		"999":          false,
		"12345678901":  false,
		"123456789a":   false,
		"1234567890\n": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsSlotID(in), "IsSlotID(%q)", in)
	}
}
