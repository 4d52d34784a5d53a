package directive

import (
	"fmt"
	"strings"
)

// Diagnostic is one problem reported during a parse. Diagnostics never abort
// the scan; the parser consumes its entire input and reports everything it
// can detect.
type Diagnostic struct {
	// File is the name of the file being scanned when the problem was
	// detected, or empty for in-memory sources.
	File string
	// Line is the 1-based line of the offending directive, or 0 when no
	// position applies.
	Line int
	// Message is the diagnostic text.
	Message string
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	switch {
	case d.File != "" && d.Line > 0:
		return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
	case d.Line > 0:
		return fmt.Sprintf("%d: %s", d.Line, d.Message)
	}
	return d.Message
}

// Diagnostics collects every problem reported during a parse. The parser
// appends to it and never consults it; whether any diagnostic occurred is a
// caller concern.
type Diagnostics []Diagnostic

// Add appends a diagnostic to the list.
func (ds *Diagnostics) Add(d Diagnostic) {
	*ds = append(*ds, d)
}

// Len returns the number of diagnostics.
func (ds Diagnostics) Len() int {
	return len(ds)
}

// HasErrors returns true if any diagnostic was reported.
func (ds Diagnostics) HasErrors() bool {
	return len(ds) > 0
}

// Messages returns just the message text of every diagnostic, in order.
func (ds Diagnostics) Messages() []string {
	msgs := make([]string, len(ds))
	for i, d := range ds {
		msgs[i] = d.Message
	}
	return msgs
}

// Error implements the error interface, summarizing the list.
func (ds Diagnostics) Error() string {
	switch len(ds) {
	case 0:
		return "no errors"
	case 1:
		return ds[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", ds[0].Error(), len(ds)-1)
}

// Format renders every diagnostic on its own line.
func (ds Diagnostics) Format() string {
	var sb strings.Builder
	for i, d := range ds {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.Error())
	}
	return sb.String()
}
