package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/alutools/dieprofile/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	VeryDifficultColor = color.New(color.FgRed, color.Bold)     // VeryDifficultColor represents standard danger.
	DifficultColor     = color.New(color.FgMagenta, color.Bold) // DifficultColor represents strong, distinct warning.
	NormalColor        = color.New(color.FgYellow)              // NormalColor represents standard caution, not bold.
	EasyColor          = color.New(color.FgCyan)                // EasyColor represents informational / low-priority signal.
	VeryEasyColor      = color.New(color.FgGreen)
)

// GetColorLabel returns a colored level label for console output (table).
func GetColorLabel(level schema.Level) string {
	text := string(level)

	switch level {
	case schema.VeryDifficultLevel:
		return VeryDifficultColor.Sprint(text)
	case schema.DifficultLevel:
		return DifficultColor.Sprint(text)
	case schema.NormalLevel:
		return NormalColor.Sprint(text)
	case schema.EasyLevel:
		return EasyColor.Sprint(text)
	default:
		return VeryEasyColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means stdout.
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

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseWeightAssignment splits a "key:value" or "key=value" weight override.
// The value is returned raw so that decimal commas survive.
func ParseWeightAssignment(s string) (key, value string, err error) {
	idx := strings.IndexAny(s, ":=")
	if idx < 0 {
		return "", "", fmt.Errorf("invalid weight format '%s', expected 'criterion:value'", s)
	}
	key = strings.TrimSpace(s[:idx])
	value = strings.TrimSpace(s[idx+1:])
	if key == "" {
		return "", "", fmt.Errorf("invalid weight format '%s', missing criterion", s)
	}
	return key, value, nil
}
