// Package tui provides the interactive terminal editor for one tracker
// block.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vollan/takt/internal/aggregate"
	"github.com/vollan/takt/internal/clock"
	"github.com/vollan/takt/internal/duration"
	"github.com/vollan/takt/internal/sortorder"
	"github.com/vollan/takt/internal/store"
)

// entry field positions in the add form
const (
	fieldDate = iota
	fieldStart
	fieldEnd
	fieldProject
	fieldActivity
	fieldCount
)

// Model is the block editor model.
type Model struct {
	store     *store.Store
	persister *store.Persister
	id        string

	cursor int
	adding bool
	inputs []textinput.Model
	focus  int
	status string
}

// New creates a block editor for the given tracker id. The block is
// created on first use, mirroring the resolution order of a freshly
// stamped document.
func New(s *store.Store, p *store.Persister, id string) Model {
	s.Block(id)

	inputs := make([]textinput.Model, fieldCount)
	placeholders := []string{"YYYY-MM-DD", "HH:MM", "HH:MM", "project", "activity"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		inputs[i] = ti
	}

	return Model{
		store:     s,
		persister: p,
		id:        id,
		inputs:    inputs,
	}
}

// Run starts the editor and blocks until it exits.
func Run(s *store.Store, p *store.Persister, id string) error {
	_, err := tea.NewProgram(New(s, p, id)).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		return m.updateAddForm(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.store.Entries(m.id)

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "a":
		m.adding = true
		m.focus = fieldDate
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		m.inputs[fieldDate].SetValue(m.store.ReferenceDate(m.id))
		m.inputs[fieldDate].Focus()

	case "d":
		if len(entries) == 0 {
			break
		}
		// The cursor indexes the sorted view; resolve it to the storage
		// position before removing.
		perm := sortorder.Permutation(entries, m.store.SortMode(m.id))
		if _, err := m.store.RemoveAt(m.id, perm[m.cursor]); err != nil {
			m.status = err.Error()
			break
		}
		if m.cursor >= len(entries)-1 && m.cursor > 0 {
			m.cursor--
		}
		m.persist("row removed")

	case "s":
		m.store.SetSort(m.id, nextSortMode(m.store.SortMode(m.id)))
		m.persist(fmt.Sprintf("sort: %s", m.store.SortMode(m.id)))

	case "r":
		m.store.Data().Settings.RoundToQuarterHour = !m.store.Data().Settings.RoundToQuarterHour
		m.persist(fmt.Sprintf("rounding: %s", onOff(m.store.Data().Settings.RoundToQuarterHour)))
	}

	return m, nil
}

func (m Model) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.status = "add cancelled"
		return m, nil

	case "tab", "shift+tab":
		m.inputs[m.focus].Blur()
		if msg.String() == "tab" {
			m.focus = (m.focus + 1) % fieldCount
		} else {
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		}
		m.inputs[m.focus].Focus()
		return m, nil

	case "enter":
		m.store.Append(m.id, store.TimeEntry{
			Date:     m.inputs[fieldDate].Value(),
			Start:    m.inputs[fieldStart].Value(),
			End:      m.inputs[fieldEnd].Value(),
			Project:  m.inputs[fieldProject].Value(),
			Activity: m.inputs[fieldActivity].Value(),
		})
		m.adding = false
		m.cursor = len(m.store.Entries(m.id)) - 1
		m.persist("row added")
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// persist saves the full blob. A failed save keeps the in-memory state
// and surfaces the error in the status line, matching the engine's
// report-but-never-rollback policy.
func (m *Model) persist(okStatus string) {
	if err := m.persister.Save(m.store.Data()); err != nil {
		m.status = fmt.Sprintf("save failed: %v (change kept in memory)", err)
		return
	}
	m.status = okStatus
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	quantize := m.store.Data().Settings.RoundToQuarterHour
	entries := sortorder.Sort(m.store.Entries(m.id), m.store.SortMode(m.id))

	b.WriteString(titleStyle.Render(fmt.Sprintf("Tracker %s", m.id)))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  %s  sort:%s  round:%s",
		m.store.ReferenceDate(m.id), m.store.SortMode(m.id), onOff(quantize))))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.viewAddForm())
	} else {
		b.WriteString(m.viewRows(entries, quantize))
	}

	b.WriteString("\n")
	b.WriteString(totalStyle.Render(fmt.Sprintf("Total %s",
		clock.FormatDuration(aggregate.Total(entries, quantize)))))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.helpLine()))

	return b.String()
}

func (m Model) viewRows(entries []store.TimeEntry, quantize bool) string {
	if len(entries) == 0 {
		return emptyStyle.Render("no entries - press a to add one") + "\n"
	}

	var b strings.Builder
	for i, e := range entries {
		line := fmt.Sprintf("%-12s %-6s %-6s %-14s %-20s %s",
			e.Date, e.Start, e.End, e.Project, e.Activity,
			clock.FormatDuration(duration.Elapsed(e.Start, e.End, quantize)))

		if i == m.cursor && !m.adding {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewAddForm() string {
	labels := []string{"date", "start", "end", "project", "activity"}

	var b strings.Builder
	for i, in := range m.inputs {
		b.WriteString(fmt.Sprintf("%-9s %s\n", labels[i], in.View()))
	}
	return b.String()
}

func (m Model) helpLine() string {
	if m.adding {
		return "tab: next field  enter: save  esc: cancel"
	}
	return "j/k: move  a: add  d: delete  s: sort  r: round  q: quit"
}

// nextSortMode cycles none -> start -> project -> none.
func nextSortMode(mode store.SortMode) store.SortMode {
	switch mode {
	case store.SortNone:
		return store.SortByStart
	case store.SortByStart:
		return store.SortByProject
	default:
		return store.SortNone
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
