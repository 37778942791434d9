package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckFlags(t *testing.T) {
	testCases := []struct {
		name          string
		format        string
		compress      bool
		errorContains string
	}{
		{name: "json", format: "json"},
		{name: "json with brotli", format: "json", compress: true},
		{name: "csv", format: "csv"},
		{
			name:          "csv with brotli",
			format:        "csv",
			compress:      true,
			errorContains: "-brotli is only supported with -format json",
		},
		{
			name:          "unknown format",
			format:        "xml",
			errorContains: `unknown format "xml"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkFlags(tc.format, tc.compress)
			if tc.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.errorContains)
			}
		})
	}
}
