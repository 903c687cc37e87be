// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cfnav/cfnav/internal/errs"
)

type multiSelectModel struct {
	label     string
	items     []string
	cursor    int
	selected  map[int]bool
	done      bool
	cancelled bool
}

func (m multiSelectModel) Init() tea.Cmd { return nil }

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	s := labelStyle.Render(m.label) + "\n\n"
	for i, item := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if m.selected[i] {
			mark = "x"
		}
		line := cursor + " [" + mark + "] " + item
		if m.cursor == i {
			line = cursorStyle.Render(line)
		}
		s += line + "\n"
	}
	return s + "\n" + helpStyle.Render("SPACE: toggle, ENTER: go, Q/ESCAPE: quit") + "\n"
}

// MultiSelect prompts for any subset of items and returns the selected
// indices in ascending order. Accepting with nothing toggled returns an
// empty slice; backing out returns errs.ErrCancelled.
func MultiSelect(label string, items []string) ([]int, error) {
	if !Interactive() {
		return nil, errs.ErrNoTerminal
	}

	p := tea.NewProgram(multiSelectModel{
		label:    label,
		items:    items,
		selected: make(map[int]bool),
	})
	out, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := out.(multiSelectModel)
	if m.cancelled {
		return nil, errs.ErrCancelled
	}

	var picked []int
	for i := range m.items {
		if m.selected[i] {
			picked = append(picked, i)
		}
	}
	return picked, nil
}
