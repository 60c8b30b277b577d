// Package errors defines the structured error taxonomy shared by every
// component of eups. Each error code maps to an exit code at the CLI
// boundary (see ExitCode).
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a category of failure, stable across releases so callers
// can match on it with errors.Is / Code(err).
type Code string

const (
	CodeUsage               Code = "USAGE_ERROR"
	CodeNoSuchProduct       Code = "NO_SUCH_PRODUCT"
	CodeNoSuchVersion       Code = "NO_SUCH_VERSION"
	CodeNoMatchingFlavor    Code = "NO_MATCHING_FLAVOR"
	CodeTableParseError     Code = "TABLE_PARSE_ERROR"
	CodeTableMissing        Code = "TABLE_MISSING"
	CodeNoMatchingVersion   Code = "NO_MATCHING_VERSION"
	CodeInconsistentVersion Code = "INCONSISTENT_VERSIONS"
	CodeCycle               Code = "CYCLE"
	CodeStateMismatch       Code = "STATE_MISMATCH"
	CodeLockBusy            Code = "LOCK_BUSY"
	CodeIO                  Code = "IO_ERROR"
	CodeExistsDifferent     Code = "EXISTS_DIFFERENT"
	CodeTagNameConflict     Code = "TAG_NAME_CONFLICT"
	CodeInternal            Code = "INTERNAL"
)

// exitCodes maps a Code to the process exit status mandated by spec §6.
var exitCodes = map[Code]int{
	CodeUsage:               2,
	CodeNoSuchProduct:       3,
	CodeNoSuchVersion:       3,
	CodeNoMatchingFlavor:    3,
	CodeTableParseError:     3,
	CodeTableMissing:        3,
	CodeNoMatchingVersion:   3,
	CodeInconsistentVersion: 3,
	CodeCycle:               3,
	CodeStateMismatch:       4,
	CodeLockBusy:            4,
	CodeExistsDifferent:     4,
	CodeTagNameConflict:     4,
	CodeIO:                  1,
	CodeInternal:            9,
}

// ExitCode returns the process exit status for err, or 9 (internal) if err
// carries no known Code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *EupsError
	if errors.As(err, &e) {
		if code, ok := exitCodes[e.Code]; ok {
			return code
		}
	}
	return 9
}

// EupsError is the structured error all of eups' own failures are wrapped
// in. Details carries error-kind-specific fields (see the constructors
// below) so diagnostics can be rendered with the same specificity the
// Python implementation's dedicated exception classes offered.
type EupsError struct {
	Code    Code
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *EupsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *EupsError) Unwrap() error { return e.Wrapped }

func (e *EupsError) Is(target error) bool {
	var t *EupsError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetail attaches a diagnostic field and returns e for chaining.
func (e *EupsError) WithDetail(key string, value interface{}) *EupsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an EupsError with the given code and message.
func New(code Code, message string) *EupsError {
	return &EupsError{Code: code, Message: message, Details: map[string]interface{}{}}
}

// Newf creates an EupsError with a formatted message.
func Newf(code Code, format string, args ...interface{}) *EupsError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err in an EupsError, returning nil if err is nil.
func Wrap(err error, code Code, message string) *EupsError {
	if err == nil {
		return nil
	}
	return &EupsError{Code: code, Message: message, Details: map[string]interface{}{}, Wrapped: err}
}

// Wrapf wraps err in an EupsError with a formatted message.
func Wrapf(err error, code Code, format string, args ...interface{}) *EupsError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// ProductNotFound reports that no product record matched the given
// name/version/flavors in stack. Any of version, flavors, or stack may be
// left empty when unknown, mirroring exceptions.ProductNotFound in the
// original implementation.
func ProductNotFound(name, version string, flavors []string, stack string) *EupsError {
	msg := "Product " + name
	if version != "" {
		msg += " " + version
	}
	if len(flavors) > 0 {
		msg += " for " + strings.Join(flavors, ",")
	}
	msg += " not found"
	if stack != "" {
		msg += " in " + stack
	}
	return New(CodeNoSuchProduct, msg).
		WithDetail("name", name).
		WithDetail("version", version).
		WithDetail("flavors", flavors).
		WithDetail("stack", stack)
}

// NoMatchingVersion reports that expr matched no declared version of name.
func NoMatchingVersion(name, expr string) *EupsError {
	return Newf(CodeNoMatchingVersion, "no version of %s matches %q", name, expr).
		WithDetail("name", name).
		WithDetail("expr", expr)
}

// TableErr reports a problem reading or parsing a table file. problem is
// a terse description ("Table file not found", "Table parsing error").
func TableErr(code Code, tablefile, name, version, flavor, problem string) *EupsError {
	msg := problem
	if name != "" {
		msg += " for " + name
	}
	if version != "" {
		msg += " " + version
	}
	if flavor != "" {
		msg += " (" + flavor + ")"
	}
	if tablefile != "" {
		msg += ": " + tablefile
	}
	return New(code, msg).
		WithDetail("tablefile", tablefile).
		WithDetail("name", name).
		WithDetail("version", version).
		WithDetail("flavor", flavor)
}

// InconsistentVersions reports that two setupRequired/setupOptional
// constraints on the same product could not both be satisfied.
func InconsistentVersions(name, exprA, exprB string) *EupsError {
	return Newf(CodeInconsistentVersion,
		"inconsistent version constraints for %s: %q vs %q", name, exprA, exprB).
		WithDetail("name", name).
		WithDetail("exprA", exprA).
		WithDetail("exprB", exprB)
}

// Cycle reports a dependency cycle discovered on required edges.
func Cycle(chain []string) *EupsError {
	return Newf(CodeCycle, "dependency cycle detected: %s", strings.Join(chain, " -> ")).
		WithDetail("chain", chain)
}

// TagNameConflict reports that a tag name collides across scopes (global vs
// user) or already points elsewhere.
func TagNameConflict(name, tag, stack string) *EupsError {
	return Newf(CodeTagNameConflict, "tag %q for product %s conflicts in %s", tag, name, stack).
		WithDetail("name", name).
		WithDetail("tag", tag).
		WithDetail("stack", stack)
}

// StateMismatch reports that a recorded SETUP_<P> marker disagrees with the
// product's current PRODUCT_DIR.
func StateMismatch(name, recorded, current string) *EupsError {
	return Newf(CodeStateMismatch, "%s: recorded dir %q does not match current dir %q", name, recorded, current).
		WithDetail("name", name).
		WithDetail("recorded", recorded).
		WithDetail("current", current)
}

// LockBusy reports that an advisory database lock could not be acquired
// within the bounded retry window.
func LockBusy(path string) *EupsError {
	return Newf(CodeLockBusy, "could not acquire lock %s", path).WithDetail("path", path)
}
