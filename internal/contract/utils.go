package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Merge status label constants.
const (
	MergedValue    = "✓ merged"     // Check mark for branches merged into the default branch
	NotMergedValue = "✗ not merged" // Cross mark for branches with unmerged work
)

// Color variables for console output.
var (
	MergedColor    = color.New(color.FgGreen)            // MergedColor marks safe-to-delete candidates.
	NotMergedColor = color.New(color.FgYellow)           // NotMergedColor marks branches that need review.
	HeaderColor    = color.New(color.FgCyan, color.Bold) // HeaderColor highlights report section headers.
)

// GetPlainMergeLabel returns a plain text label for a branch's merge status.
// This is the core logic used for text, CSV and table printing.
func GetPlainMergeLabel(merged bool) string {
	if merged {
		return MergedValue
	}
	return NotMergedValue
}

// GetColorMergeLabel returns a colored text label for console output.
// It uses GetPlainMergeLabel to determine the string, and then applies the
// appropriate color.
func GetColorMergeLabel(merged bool) string {
	text := GetPlainMergeLabel(merged)
	if merged {
		return MergedColor.Sprint(text)
	}
	return NotMergedColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects standard output.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateSubject truncates a commit subject to a maximum width.
// The cut is rune-safe and carries no ellipsis marker.
func TruncateSubject(subject string, maxWidth int) string {
	runes := []rune(subject)
	if len(runes) > maxWidth {
		return string(runes[:maxWidth])
	}
	return subject
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
