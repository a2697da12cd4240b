package textkit

import "github.com/google/uuid"

// DiagnosticKind classifies a Diagnostic's severity. THE CORE never
// computes diagnostics itself; a host (linter, syntax checker) publishes
// them via SetDiagnostics.
type DiagnosticKind int

const (
	DiagnosticInfo DiagnosticKind = iota
	DiagnosticWarning
	DiagnosticError
)

// Diagnostic is an advisory annotation on a buffer row. Diagnostics are
// purely advisory: they are never part of undo/redo and never affect
// Execute's behavior. ID is stable across redraw cycles so a host can
// update or remove a specific diagnostic without recomputing the whole
// set.
type Diagnostic struct {
	ID      uuid.UUID
	Row     uint32
	Message string
	Kind    DiagnosticKind
}

// NewDiagnostic creates a Diagnostic with a freshly generated stable ID.
func NewDiagnostic(row uint32, message string, kind DiagnosticKind) Diagnostic {
	return Diagnostic{ID: uuid.New(), Row: row, Message: message, Kind: kind}
}

// Diagnostics returns the currently published diagnostics.
func (e *Engine) Diagnostics() []Diagnostic {
	e.diagMu.RLock()
	defer e.diagMu.RUnlock()
	out := make([]Diagnostic, len(e.diags))
	copy(out, e.diags)
	return out
}

// SetDiagnostics replaces the published diagnostic set. A host calls this
// after recomputing lint/syntax results; the engine does no validation of
// Row against current buffer bounds since diagnostics are advisory only.
func (e *Engine) SetDiagnostics(diags []Diagnostic) {
	e.diagMu.Lock()
	defer e.diagMu.Unlock()
	e.diags = append([]Diagnostic(nil), diags...)
}
