package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/shaderpack/directive"
)

var (
	errorLabel    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// printDiagnostics renders every parse diagnostic to stderr.
func printDiagnostics(diags directive.Diagnostics) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, formatDiagnostic(d))
	}
}

// formatDiagnostic renders one diagnostic as "error: <location>: <message>".
func formatDiagnostic(d directive.Diagnostic) string {
	location := ""
	switch {
	case d.File != "" && d.Line > 0:
		location = fmt.Sprintf("%s:%d", d.File, d.Line)
	case d.Line > 0:
		location = fmt.Sprintf("line %d", d.Line)
	}

	if location == "" {
		return fmt.Sprintf("%s %s", errorLabel.Render("error:"), d.Message)
	}
	return fmt.Sprintf("%s %s: %s", errorLabel.Render("error:"), locationStyle.Render(location), d.Message)
}
