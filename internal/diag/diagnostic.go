package diag

import (
	"fmt"

	"loupe/internal/source"
)

// Label points a diagnostic at one source location, optionally annotated.
type Label struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a structured error or warning. A diagnostic may carry zero
// labels (a file-level message) or several (e.g. a duplicate binding points
// at both declarations).
type Diagnostic struct {
	Severity Severity
	Message  string
	Labels   []Label
}

func New(sev Severity, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Message: msg}
}

func Error(msg string) Diagnostic {
	return New(SevError, msg)
}

func Errorf(format string, args ...any) Diagnostic {
	return New(SevError, fmt.Sprintf(format, args...))
}

func Warning(msg string) Diagnostic {
	return New(SevWarning, msg)
}

func Warningf(format string, args ...any) Diagnostic {
	return New(SevWarning, fmt.Sprintf(format, args...))
}

// WithLabel appends a labeled span.
func (d Diagnostic) WithLabel(sp source.Span, msg string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Msg: msg})
	return d
}

// WithSpan appends an unannotated labeled span.
func (d Diagnostic) WithSpan(sp source.Span) Diagnostic {
	return d.WithLabel(sp, "")
}
