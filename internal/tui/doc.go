// Package tui decides whether output is styled and holds the lipgloss
// palette used by the command line.
package tui
