package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare 10 digits gets US country code", "5551234567", "+15551234567"},
		{"formatted US number", "(555) 123-4567", "+15551234567"},
		{"international with spaces", "+44 20 7946 0958", "+442079460958"},
		{"already prefixed is not double-prefixed", "+15551234567", "+15551234567"},
		{"11 digits without plus", "15551234567", "+15551234567"},
		{"dots and dashes", "555.123.4567", "+15551234567"},
		{"no digits at all", "call me", ""},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePhone(tc.input))
		})
	}
}
