// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cfnav/cfnav/internal/errs"
)

// maxVisible caps how many suggestions render at once; the cursor scrolls
// the window over longer lists.
const maxVisible = 10

// SuggestFunc narrows the candidates for the current input, returning label
// indices ordered by relevance. Working in indices keeps selections exact
// even when two labels render identically.
type SuggestFunc func(input string) []int

type autocompleteModel struct {
	label     string
	input     textinput.Model
	labels    []string
	suggest   SuggestFunc
	visible   []int
	cursor    int
	offset    int
	picked    int
	done      bool
	cancelled bool
}

func (m autocompleteModel) Init() tea.Cmd { return textinput.Blink }

func (m autocompleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
			return m, nil
		case "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				if m.cursor >= m.offset+maxVisible {
					m.offset = m.cursor - maxVisible + 1
				}
			}
			return m, nil
		case "enter":
			if len(m.visible) > 0 {
				m.picked = m.visible[m.cursor]
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	m.visible = m.suggest(m.input.Value())
	if m.cursor >= len(m.visible) {
		m.cursor = 0
		m.offset = 0
	}

	return m, cmd
}

func (m autocompleteModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	s := labelStyle.Render(m.label) + "\n" + m.input.View() + "\n\n"

	end := m.offset + maxVisible
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			s += cursorStyle.Render("> "+m.labels[m.visible[i]]) + "\n"
		} else {
			s += "  " + m.labels[m.visible[i]] + "\n"
		}
	}
	if len(m.visible) == 0 {
		s += helpStyle.Render("(no matches)") + "\n"
	}

	s += "\n" + helpStyle.Render(fmt.Sprintf("%d matches  UP/DOWN: move, ENTER: pick, ESC: quit", len(m.visible)))
	return s + "\n"
}

// Autocomplete prompts for one pick out of labels, narrowing the list with
// suggest as the user types. initial seeds the input. Returns the index of
// the picked label, or errs.ErrCancelled when the user backs out.
func Autocomplete(label, initial string, labels []string, suggest SuggestFunc) (int, error) {
	if !Interactive() {
		return 0, errs.ErrNoTerminal
	}

	ti := textinput.New()
	ti.SetValue(initial)
	ti.Focus()

	m := autocompleteModel{
		label:   label,
		input:   ti,
		labels:  labels,
		suggest: suggest,
		visible: suggest(initial),
		picked:  -1,
	}

	p := tea.NewProgram(m)
	out, err := p.Run()
	if err != nil {
		return 0, err
	}

	final := out.(autocompleteModel)
	if final.cancelled || final.picked < 0 {
		return 0, errs.ErrCancelled
	}
	return final.picked, nil
}
