package ui

import (
	"clientes/internal/cliente"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModal is a generic confirmation modal.
// Enter or y confirms; Esc or n cancels.
type ConfirmModal struct {
	Title     string
	Label     string
	Details   string // Optional extra line (e.g. the record id)
	OnConfirm func() tea.Msg
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a generic confirmation modal.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
	}
}

// WithDetails adds an extra line below the label.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewDeleteClienteConfirmModal asks before deleting a record.
func NewDeleteClienteConfirmModal(c cliente.Cliente) *ConfirmModal {
	id := c.ID
	return NewConfirmModal(
		"¿Confirmas que deseas eliminar este cliente?",
		c.Label(),
		func() tea.Msg { return DeleteClienteMsg{ID: id} },
	).WithDetails("ID: " + id)
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "n":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter", "y":
			if m.OnConfirm != nil {
				return m, m.OnConfirm
			}
		}
	}
	return m, nil
}

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n"
	content += Styles.Label.Render(m.Label)
	if m.Details != "" {
		content += "\n" + Styles.Dim.Render(m.Details)
	}
	content += "\n\n" + Styles.Hint.Render("y/Enter: eliminar  Esc: cancelar")
	return Styles.BoxDanger.Render(content)
}
