// Package tui decides whether output goes to a human at a terminal and holds
// the lipgloss styles used when it does.
package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how output will be consumed.
type Mode int

const (
	// ModePlain is used for pipes, redirects and CI logs.
	ModePlain Mode = iota
	// ModeTerminal is used when stdout is a terminal.
	ModeTerminal
)

// DetectMode determines whether styled output is appropriate.
//
// Returns ModePlain if:
//   - FIXINSERT_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdout is not a terminal
//
// Returns ModeTerminal otherwise.
func DetectMode() Mode {
	if os.Getenv("FIXINSERT_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}
	return ModeTerminal
}

// ColorEnabled is a convenience function that returns true in ModeTerminal.
func ColorEnabled() bool {
	return DetectMode() == ModeTerminal
}
