// Package testutil provides small testing helpers shared across the repo's
// test suites: a few hand-rolled assertions and temp-stack scaffolding.
// The test suites themselves assert with testify.
package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// AssertTrue checks if a value is true.
func AssertTrue(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !value {
		t.Errorf("%sExpected true, got false", formatMessage(msgAndArgs...))
	}
}

// AssertFalse checks if a value is false.
func AssertFalse(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	if value {
		t.Errorf("%sExpected false, got true", formatMessage(msgAndArgs...))
	}
}

// AssertContains checks if a string contains a substring.
func AssertContains(t *testing.T, str, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(str, substr) {
		t.Errorf("%sString %q does not contain %q", formatMessage(msgAndArgs...), str, substr)
	}
}

// AssertNoPanic checks that a function does not panic.
func AssertNoPanic(t *testing.T, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("%sUnexpected panic: %v", formatMessage(msgAndArgs...), r)
		}
	}()
	fn()
}

// FileExists reports whether path names a regular file.
func FileExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path names a directory.
func DirExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg + "\n"
		}
		return fmt.Sprint(msgAndArgs[0]) + "\n"
	}
	if format, ok := msgAndArgs[0].(string); ok && strings.Contains(format, "%") {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + "\n"
	}
	parts := make([]string, len(msgAndArgs))
	for i, arg := range msgAndArgs {
		parts[i] = fmt.Sprint(arg)
	}
	return strings.Join(parts, " ") + "\n"
}
