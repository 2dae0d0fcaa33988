// Package report is the append-only diagnostic store every higher
// component (lexer, parser) holds a reference to. Grounded on the
// teacher's compiler/internal/report/reporter.go Reports/Report shape,
// adapted to carry source.Range instead of source.Location and a numeric
// Code per spec.md §4.1/§6.
package report

import (
	"fmt"

	"github.com/glyphlang/glyph/internal/source"
)

// Severity is a diagnostic's level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single emitted record: a code, a severity, a range, a
// rendered message, and an optional hint shown under the underline.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Range    source.Range
	Message  string
	Hint     string
}

// AddHint attaches a hint message and returns the diagnostic, mirroring
// the teacher's Report.AddHint fluent style.
func (d *Diagnostic) AddHint(hint string) *Diagnostic {
	d.Hint = hint
	return d
}

// Store is the append-only collection of diagnostics for one parse job.
// Emission never throws (spec.md §4.1): Error/Warning/Info always
// succeed and simply append.
type Store struct {
	items []*Diagnostic
}

// All returns every diagnostic recorded so far, in emission order.
func (s *Store) All() []*Diagnostic {
	return s.items
}

func (s *Store) add(code Code, severity Severity, rng source.Range, format string, args ...any) *Diagnostic {
	d := &Diagnostic{
		Code:     code,
		Severity: severity,
		Range:    rng,
		Message:  fmt.Sprintf(format, args...),
	}
	s.items = append(s.items, d)
	return d
}

// Error records an error-level diagnostic. Parsing continues unless the
// caller separately decides the failure is unrecoverable (spec.md §7).
func (s *Store) Error(code Code, rng source.Range, format string, args ...any) *Diagnostic {
	return s.add(code, SeverityError, rng, format, args...)
}

// Warning records a warning-level diagnostic.
func (s *Store) Warning(code Code, rng source.Range, format string, args ...any) *Diagnostic {
	return s.add(code, SeverityWarning, rng, format, args...)
}

// Info records an informational diagnostic.
func (s *Store) Info(code Code, rng source.Range, format string, args ...any) *Diagnostic {
	return s.add(code, SeverityInfo, rng, format, args...)
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (s *Store) HasErrors() bool {
	for _, d := range s.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics recorded.
func (s *Store) Len() int {
	return len(s.items)
}
