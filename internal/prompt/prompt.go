// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Interactive reports whether stdin is attached to a terminal. Prompts
// refuse to run without one.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
