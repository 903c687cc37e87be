// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cfnav/cfnav/internal/errs"
)

type textModel struct {
	label     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return labelStyle.Render(m.label) + "\n" + m.input.View() + "\n" +
		helpStyle.Render("ENTER: accept, ESC: quit") + "\n"
}

// Text prompts for a single line of input prefilled with initial.
func Text(label, initial string) (string, error) {
	if !Interactive() {
		return "", errs.ErrNoTerminal
	}

	ti := textinput.New()
	ti.SetValue(initial)
	ti.Focus()

	p := tea.NewProgram(textModel{label: label, input: ti})
	out, err := p.Run()
	if err != nil {
		return "", err
	}

	m := out.(textModel)
	if m.cancelled {
		return "", errs.ErrCancelled
	}
	return m.input.Value(), nil
}
