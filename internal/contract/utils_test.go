package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainMergeLabel(t *testing.T) {
	assert.Equal(t, MergedValue, GetPlainMergeLabel(true))
	assert.Equal(t, NotMergedValue, GetPlainMergeLabel(false))
	assert.Equal(t, "✓ merged", GetPlainMergeLabel(true))
	assert.Equal(t, "✗ not merged", GetPlainMergeLabel(false))
}

func TestGetColorMergeLabel(t *testing.T) {
	tests := []struct {
		name   string
		merged bool
		label  string
	}{
		{"merged", true, MergedValue},
		{"not merged", false, NotMergedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorMergeLabel(tt.merged)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestTruncateSubject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{
			name:     "shorter than limit",
			input:    "Fix typo",
			maxWidth: 50,
			expected: "Fix typo",
		},
		{
			name:     "exactly at limit",
			input:    strings.Repeat("a", 50),
			maxWidth: 50,
			expected: strings.Repeat("a", 50),
		},
		{
			name:     "one past limit",
			input:    strings.Repeat("a", 51),
			maxWidth: 50,
			expected: strings.Repeat("a", 50),
		},
		{
			name:     "multibyte runes stay intact",
			input:    strings.Repeat("é", 60),
			maxWidth: 50,
			expected: strings.Repeat("é", 50),
		},
		{
			name:     "empty subject",
			input:    "",
			maxWidth: 50,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateSubject(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", "yes", true, false},
		{"no", "no", false, false},
		{"true", "true", true, false},
		{"false", "false", false, false},
		{"one", "1", true, false},
		{"zero", "0", false, false},
		{"uppercase yes", "YES", true, false},
		{"mixed case", "True", true, false},
		{"invalid value", "maybe", false, true},
		{"empty string", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}
