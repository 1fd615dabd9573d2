package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/cef-bridge/idl"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectIface modelState = iota
	stateShowMethods
)

type interactiveModel struct {
	all      []idl.Interface
	shown    []idl.Interface
	filter   textinput.Model
	verify   error
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Width = 40
	ti.Focus()

	m := &interactiveModel{all: idl.All(), filter: ti, state: stateSelectIface}
	m.applyFilter()
	return m
}

type verifiedMsg struct {
	err error
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.verifyCatalog)
}

func (m *interactiveModel) verifyCatalog() tea.Msg {
	errs := idl.VerifyAll()
	if len(errs) == 0 {
		return verifiedMsg{}
	}
	return verifiedMsg{err: fmt.Errorf("%d interfaces drifted, first: %w", len(errs), errs[0])}
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	m.shown = m.shown[:0]
	for _, desc := range m.all {
		if q == "" || strings.Contains(strings.ToLower(desc.Name), q) {
			m.shown = append(m.shown, desc)
		}
	}
	if m.selected >= len(m.shown) {
		m.selected = max(len(m.shown)-1, 0)
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateShowMethods {
				return m, tea.Quit
			}

		case "up":
			if m.state == stateSelectIface && m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down":
			if m.state == stateSelectIface && m.selected < len(m.shown)-1 {
				m.selected++
			}
			return m, nil

		case "enter":
			switch m.state {
			case stateSelectIface:
				if len(m.shown) > 0 {
					m.state = stateShowMethods
					m.filter.Blur()
				}
			case stateShowMethods:
				m.state = stateSelectIface
				m.filter.Focus()
			}
			return m, nil

		case "esc":
			if m.state == stateShowMethods {
				m.state = stateSelectIface
				m.filter.Focus()
				return m, nil
			}
			return m, tea.Quit
		}

	case verifiedMsg:
		m.verify = msg.err
		return m, nil
	}

	if m.state == stateSelectIface {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bridge Inspector"))
	b.WriteString(fmt.Sprintf(" %d interfaces ", len(m.all)))
	if m.verify != nil {
		b.WriteString(errorStyle.Render(m.verify.Error()))
	} else {
		b.WriteString(resultStyle.Render("verified"))
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectIface:
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
		if len(m.shown) == 0 {
			b.WriteString(errorStyle.Render("no interface matches"))
			b.WriteString("\n")
		}
		for i, desc := range m.shown {
			line := fmt.Sprintf("%s %s", desc.Name, typeStyle.Render(desc.Side.String()))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + desc.Name))
				b.WriteString(" " + typeStyle.Render(desc.Side.String()))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("type to filter • ↑/↓ select • enter methods • esc quit"))

	case stateShowMethods:
		desc := m.shown[m.selected]
		b.WriteString(interfaceLine(desc))
		b.WriteString("\n\n")
		for _, method := range desc.Methods {
			b.WriteString("  ")
			b.WriteString(funcStyle.Render(method.Name))
			b.WriteString(typeStyle.Render(strings.TrimPrefix(methodSignature(method), method.Name)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

func witTypeStr(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
