package ui

import (
	"errors"
	"strings"

	"clientes/internal/cliente"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ClienteFormModal is the create/edit modal: one text input per field.
// Tab cycles focus; Enter on the last field or ctrl+s submits; Esc cancels.
type ClienteFormModal struct {
	Editing bool
	Pending bool   // a submit is in flight
	Invalid string // inline message from client-side validation

	// Spinner renders the owner's spinner frame while Pending.
	Spinner func() string
	inputs  []textinput.Model
	focus   int
}

// Ensure ClienteFormModal implements View.
var _ View = (*ClienteFormModal)(nil)

// NewClienteFormModal creates the modal pre-filled from form.
func NewClienteFormModal(editing bool, form cliente.Form) *ClienteFormModal {
	inputs := make([]textinput.Model, len(cliente.Fields))
	for i, f := range cliente.Fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder()
		ti.Prompt = "› "
		ti.Width = 40
		ti.CharLimit = 120
		ti.SetValue(form.Get(f))
		inputs[i] = ti
	}
	m := &ClienteFormModal{Editing: editing, inputs: inputs}
	m.setFocus(0)
	return m
}

// Form returns the current input values.
func (m *ClienteFormModal) Form() cliente.Form {
	var f cliente.Form
	for i, field := range cliente.Fields {
		f.Set(field, m.inputs[i].Value())
	}
	return f
}

// Focused returns the field that currently has focus.
func (m *ClienteFormModal) Focused() cliente.Field {
	return cliente.Fields[m.focus]
}

// Title is the modal heading.
func (m *ClienteFormModal) Title() string {
	if m.Editing {
		return "Editar cliente"
	}
	return "Nuevo cliente"
}

// SubmitLabel is the caption of the submit action.
func (m *ClienteFormModal) SubmitLabel() string {
	if m.Editing {
		return "Guardar cambios"
	}
	return "Agregar cliente"
}

func (m *ClienteFormModal) setFocus(i int) tea.Cmd {
	n := len(m.inputs)
	m.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// Init implements View.
func (m *ClienteFormModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ClienteFormModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "ctrl+s":
			return m, m.submit()
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m, m.submit()
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.Invalid = ""
	}
	return m, cmd
}

// submit validates the form and, if it passes, asks the app to send it.
func (m *ClienteFormModal) submit() tea.Cmd {
	if m.Pending {
		return nil
	}
	if err := m.Form().Validate(); err != nil {
		m.Invalid = err.Error()
		var fe *cliente.FieldError
		if errors.As(err, &fe) {
			for i, f := range cliente.Fields {
				if f == fe.Field {
					return m.setFocus(i)
				}
			}
		}
		return nil
	}
	m.Invalid = ""
	return func() tea.Msg { return SubmitClienteMsg{} }
}

// View implements View.
func (m *ClienteFormModal) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(m.Title()) + "\n\n")
	for i, f := range cliente.Fields {
		label := Styles.Label
		if i == m.focus {
			label = Styles.Focused
		}
		b.WriteString(label.Render(f.Label()) + "\n")
		b.WriteString(m.inputs[i].View() + "\n\n")
	}
	if m.Invalid != "" {
		b.WriteString(Styles.Details.Render(m.Invalid) + "\n\n")
	}
	if m.Pending {
		line := Styles.Status.Render("Guardando...")
		if m.Spinner != nil {
			line = m.Spinner() + " " + line
		}
		b.WriteString(line + "\n\n")
	}
	b.WriteString(Styles.Hint.Render("Enter/ctrl+s: " + m.SubmitLabel() + "  Tab: siguiente  Esc: Cancelar"))
	return Styles.Box.Render(b.String())
}
