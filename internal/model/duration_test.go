package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 minutes", FormatDuration(45))
	assert.Equal(t, "1 minutes", FormatDuration(1))
}

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		input   string
		minutes int
		wantErr bool
	}{
		{"45 minutes", 45, false},
		{"90 minutes", 90, false},
		{"1 minutes", 1, false},
		{"0 minutes", 0, true},
		{"45 min", 0, true},
		{"45minutes", 0, true},
		{" 45 minutes", 0, true},
		{"45 minutes ", 0, true},
		{"-45 minutes", 0, true},
		{"forty-five minutes", 0, true},
		{"", 0, true},
	}

	for _, tc := range testCases {
		minutes, err := ParseDuration(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "ParseDuration(%q)", tc.input)
			continue
		}
		assert.NoError(t, err, "ParseDuration(%q)", tc.input)
		assert.Equal(t, tc.minutes, minutes, "ParseDuration(%q)", tc.input)
	}
}
