// Package diag holds the integrity diagnostics policy used by the build
// pipeline. Integrity problems (malformed tables, oversized palettes, stray
// indices) are only surfaced when diagnostics are enabled; otherwise the
// pipeline carries on with whatever it has.
package diag

import "fmt"

// IntegrityError describes a data integrity violation found during a build.
type IntegrityError struct {
	Component string
	Msg       string
}

func (e *IntegrityError) Error() string {
	return "integrity: " + e.Component + ": " + e.Msg
}

// Errorf builds an IntegrityError for component.
func Errorf(component, format string, args ...interface{}) *IntegrityError {
	return &IntegrityError{Component: component, Msg: fmt.Sprintf(format, args...)}
}

// Policy decides what happens to an integrity violation. Report returns a
// non-nil error when the caller must halt.
type Policy interface {
	Enabled() bool
	Report(err *IntegrityError) error
}

type logger interface {
	Errorf(component string, format string, args ...interface{})
}

// Disabled ignores every violation.
type Disabled struct{}

func (Disabled) Enabled() bool                    { return false }
func (Disabled) Report(err *IntegrityError) error { return nil }

// Strict logs each violation and asks the caller to halt.
type Strict struct {
	Logger logger
}

func (Strict) Enabled() bool { return true }

func (s Strict) Report(err *IntegrityError) error {
	if err == nil {
		return nil
	}
	if s.Logger != nil {
		s.Logger.Errorf(err.Component, "%s", err.Msg)
	}
	return err
}

// New returns Strict when enabled, Disabled otherwise.
func New(enabled bool, l logger) Policy {
	if enabled {
		return Strict{Logger: l}
	}
	return Disabled{}
}
