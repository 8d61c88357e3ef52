package ui

import (
	"fmt"
	"strings"

	"clientes/internal/cliente"
	"clientes/internal/session"
	"clientes/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	cursorMark    = "▸ "
	columnGutter  = 2
)

// ClientesView renders List State as a two-column table with a cursor.
// It reads records from the shared session.State and never mutates them.
type ClientesView struct {
	State    *session.State
	Selected int // index into State.Clientes
	width    int
	height   int
}

// Ensure ClientesView implements View.
var _ View = (*ClientesView)(nil)

// NewClientesView creates a table over the given state.
func NewClientesView(s *session.State) *ClientesView {
	return &ClientesView{State: s}
}

// Init implements View.
func (v *ClientesView) Init() tea.Cmd {
	return nil
}

// SetSize records the terminal size.
func (v *ClientesView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SelectedCliente returns the record under the cursor.
func (v *ClientesView) SelectedCliente() (cliente.Cliente, bool) {
	v.Clamp()
	if v.State == nil || len(v.State.Clientes) == 0 {
		return cliente.Cliente{}, false
	}
	return v.State.Clientes[v.Selected], true
}

// Clamp keeps the cursor inside the list after it shrinks.
func (v *ClientesView) Clamp() {
	n := 0
	if v.State != nil {
		n = len(v.State.Clientes)
	}
	if v.Selected >= n {
		v.Selected = n - 1
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
}

// SelectID moves the cursor to the record with the given id, if present.
func (v *ClientesView) SelectID(id string) {
	if v.State == nil {
		return
	}
	if i := cliente.IndexOf(v.State.Clientes, id); i >= 0 {
		v.Selected = i
	}
}

// Update implements View.
func (v *ClientesView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		n := 0
		if v.State != nil {
			n = len(v.State.Clientes)
		}
		switch msg.String() {
		case "j", "down":
			if v.Selected < n-1 {
				v.Selected++
			}
		case "k", "up":
			if v.Selected > 0 {
				v.Selected--
			}
		case "g", "home":
			v.Selected = 0
		case "G", "end":
			if n > 0 {
				v.Selected = n - 1
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *ClientesView) View() string {
	width := v.width
	if width <= 0 {
		width = defaultWidth
	}
	v.Clamp()

	var list []cliente.Cliente
	if v.State != nil {
		list = v.State.Clientes
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Clientes (%d)", len(list))) + "\n")
	b.WriteString(Styles.Hint.Render("a: agregar  e/Enter: editar  d: eliminar  q: salir  [SPC] comandos") + "\n\n")

	if len(list) == 0 {
		b.WriteString(Styles.Empty.Render("No hay clientes") + "\n")
		return b.String()
	}

	cols := textutil.SplitColumns(width-len(cursorMark), columnGutter, 12, 1, 1)
	gutter := strings.Repeat(" ", columnGutter)
	b.WriteString("  " + Styles.Header.Render(textutil.PadRightVisual("Cliente", cols[0])+gutter+textutil.PadRightVisual("Contacto", cols[1])) + "\n")

	start, end := v.visibleRange(len(list))
	for i := start; i < end; i++ {
		c := list[i]
		mark := "  "
		nameStyle := Styles.Normal
		if i == v.Selected {
			mark = cursorMark
			nameStyle = Styles.Selected
		}
		if v.State != nil && v.State.Pending == session.PendingDelete && v.State.PendingID == c.ID {
			nameStyle = Styles.Muted
		}
		top := nameStyle.Render(textutil.PadRightVisual(c.Nombre, cols[0])) + gutter +
			Styles.Muted.Render(textutil.Truncate(c.Correo, cols[1]))
		b.WriteString(mark + top + "\n")

		bottom := Styles.Dim.Render(textutil.PadRightVisual("ID: "+c.ID, cols[0]))
		if c.Telefono != "" {
			bottom += gutter + Styles.Muted.Render(textutil.Truncate(c.Telefono, cols[1]))
		}
		b.WriteString("  " + bottom + "\n")
	}
	if end < len(list) || start > 0 {
		b.WriteString(Styles.Hint.Render(fmt.Sprintf("%d-%d de %d", start+1, end, len(list))) + "\n")
	}
	return b.String()
}

// visibleRange returns the window of rows that fits the terminal and keeps
// the cursor visible. Each record takes two lines.
func (v *ClientesView) visibleRange(n int) (start, end int) {
	height := v.height
	if height <= 0 {
		height = defaultHeight
	}
	// Title, hint, blank, header, status line, pager line.
	rows := (height - 6) / 2
	if rows < 1 {
		rows = 1
	}
	if n <= rows {
		return 0, n
	}
	start = v.Selected - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}
