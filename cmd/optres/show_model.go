package main

import (
	"fmt"
	"strings"

	"optres/cmd/optres/option"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type showState int

const (
	stateTable showState = iota
	stateEdit
)

var (
	styleBase = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	styleOverlay = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3).
			MarginLeft(2)

	styleOverlayTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	styleKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Padding(0, 1)

	styleErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

// showModel displays the resolved parameters of one preset. Editing a row
// replaces that parameter's bid and resolves the preset again from scratch.
type showModel struct {
	table  table.Model
	input  textinput.Model
	preset option.Preset
	bids   bidList
	params []paramReport
	state  showState
	status string
	err    error
}

func newShowModel(p option.Preset, bids bidList) showModel {
	columns := []table.Column{
		{Title: "KEY", Width: 4},
		{Title: "NAME", Width: 16},
		{Title: "KIND", Width: 7},
		{Title: "VALUE", Width: 20},
		{Title: "ALLOWED", Width: 24},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("99"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 256

	m := showModel{
		table:  t,
		input:  in,
		preset: p,
		bids:   append(bidList(nil), bids...),
		state:  stateTable,
	}
	m.refresh()
	return m
}

// refresh resolves the preset with the current bids. On failure the
// previous rows stay visible and the error is shown below the table.
func (m *showModel) refresh() {
	r, err := resolve(m.preset, m.bids, resolutionOpts()...)
	if err != nil {
		m.err = err
		return
	}
	defer r.Close()
	m.err = nil
	m.params = buildReport(m.preset.Name, r).Params
	m.table.SetRows(m.rows())
}

func (m showModel) rows() []table.Row {
	rows := make([]table.Row, len(m.params))
	for i, p := range m.params {
		rows[i] = table.Row{p.Key, p.Name, p.Kind, fmt.Sprint(p.Value), m.allowed(p)}
	}
	return rows
}

// allowed summarises the declared values of a parameter.
func (m showModel) allowed(p paramReport) string {
	if p.Kind == option.KindString.String() {
		return "text"
	}
	ranges, err := option.ListRanges(m.preset.Spec, p.Key[0])
	if err != nil {
		return err.Error()
	}
	parts := make([]string, len(ranges))
	for i, r := range ranges {
		parts[i] = formatRange(r)
	}
	return strings.Join(parts, "/")
}

// setBid replaces the bid for name, or appends one.
func setBid(bids bidList, name, value string) bidList {
	for i := range bids {
		if bids[i].Name == name {
			bids[i].Value = value
			return bids
		}
	}
	return append(bids, bid{Name: name, Value: value})
}

func (m showModel) Init() tea.Cmd {
	return nil
}

func (m showModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateTable:
		return m.updateTable(msg)
	case stateEdit:
		return m.updateEdit(msg)
	}
	return m, nil
}

func (m showModel) updateTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", "e":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.params) {
				m.input.SetValue(fmt.Sprint(m.params[idx].Value))
				m.input.CursorEnd()
				m.state = stateEdit
				return m, m.input.Focus()
			}
			return m, nil
		case "r":
			m.bids = nil
			m.status = "bids cleared"
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m showModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			m.input.Blur()
			m.state = stateTable
			return m, nil
		case "enter":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.params) {
				name := m.params[idx].Name
				prev := append(bidList(nil), m.bids...)
				m.bids = setBid(m.bids, name, m.input.Value())
				m.refresh()
				if m.err != nil {
					m.bids = prev
				} else {
					m.status = fmt.Sprintf("%s set to %s", name, m.input.Value())
				}
			}
			m.input.Blur()
			m.state = stateTable
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m showModel) View() string {
	title := styleTitle.Render(strings.ToUpper(appName) + "  [" + m.preset.Name + "]  " + m.preset.Spec)
	tableView := styleBase.Render(m.table.View())

	var status string
	switch {
	case m.err != nil:
		status = styleErr.Render(m.err.Error())
	case m.status != "":
		status = styleOK.Render(m.status)
	}

	if m.state == stateEdit {
		var target string
		if idx := m.table.Cursor(); idx >= 0 && idx < len(m.params) {
			target = m.params[idx].Name
		}
		overlay := styleOverlay.Render(
			styleOverlayTitle.Render("Set "+target) + "\n\n" +
				m.input.View() + "\n\n" +
				styleKey.Render("enter") + " apply    " +
				styleKey.Render("esc") + " cancel",
		)
		return title + "\n" + tableView + "\n" + overlay
	}

	help := styleHelp.Render("↑/↓  navigate    enter  edit    r  clear bids    q  quit")
	if status != "" {
		return title + "\n" + tableView + "\n" + status + "\n" + help
	}
	return title + "\n" + tableView + "\n" + help
}
