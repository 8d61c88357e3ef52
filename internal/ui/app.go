package ui

import (
	"context"

	"clientes/internal/session"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// AppModel is the root model. It owns the session state, the client table
// and the modal overlays, and turns user intents into Remote calls.
type AppModel struct {
	State      *session.State
	Table      *ClientesView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Remote     Remote
	Log        zerolog.Logger

	// Status is the one-line feedback shown under the table after a successful change.
	Status        string
	StatusIsError bool

	ctx     context.Context
	spinner spinner.Model
	width   int
	height  int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model over remote.
func NewAppModel(ctx context.Context, remote Remote, log zerolog.Logger) *AppModel {
	if ctx == nil {
		ctx = context.Background()
	}
	state := session.New()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &AppModel{
		State:      state,
		Table:      NewClientesView(state),
		KeyHandler: NewKeyHandler(newRegistry()),
		Remote:     remote,
		Log:        log,
		ctx:        ctx,
		spinner:    sp,
	}
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Salir")
	reg.BindWithDesc("SPC q", tea.Quit, "Salir")
	showCreate := func() tea.Msg { return ShowCreateClienteMsg{} }
	showEdit := func() tea.Msg { return ShowEditClienteMsg{} }
	showDelete := func() tea.Msg { return ShowDeleteClienteMsg{} }
	reg.Bind("a", showCreate)
	reg.Bind("e", showEdit)
	reg.Bind("enter", showEdit)
	reg.Bind("d", showDelete)
	reg.BindWithDesc("SPC c a", showCreate, "Agregar")
	reg.BindWithDesc("SPC c e", showEdit, "Editar")
	reg.BindWithDesc("SPC c d", showDelete, "Eliminar")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// busy reports whether the spinner should keep ticking.
func (m *AppModel) busy() bool {
	return m.State.Loading || m.State.Pending != session.PendingNone
}

// Init implements tea.Model: start the spinner and the initial load.
func (a *appModelAdapter) Init() tea.Cmd {
	a.Log.Debug().Str("base_url", baseURL(a.Remote)).Msg("loading clientes")
	return tea.Batch(a.spinner.Tick, loadClientesCmd(a.ctx, a.Remote))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Table.SetSize(msg.Width, msg.Height)
		return a, nil
	case spinner.TickMsg:
		if !a.busy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case ClientesLoadedMsg:
		return a.handleClientesLoaded(msg)
	case ClienteSavedMsg:
		return a.handleClienteSaved(msg)
	case ClienteDeletedMsg:
		return a.handleClienteDeleted(msg)
	case ShowCreateClienteMsg:
		return a.handleShowCreate()
	case ShowEditClienteMsg:
		return a.handleShowEdit()
	case ShowDeleteClienteMsg:
		return a.handleShowDelete()
	case SubmitClienteMsg:
		return a.handleSubmit()
	case DeleteClienteMsg:
		return a.handleDelete(msg)
	case DismissModalMsg:
		return a.handleDismissModal()
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Non-key messages (cursor blink) go to the top overlay.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	// The error and loading screens accept nothing but quit.
	if a.State.Err != nil || a.State.Loading {
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil
	}
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		a.syncForm()
		return a, cmd
	}
	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}
	_, cmd := a.Table.Update(msg)
	return a, cmd
}

// syncForm copies what the user typed into Form State.
func (a *appModelAdapter) syncForm() {
	if m := a.formModal(); m != nil && a.State.ModalOpen() {
		a.State.Form = m.Form()
	}
}

// formModal returns the open form modal, if any.
func (a *appModelAdapter) formModal() *ClienteFormModal {
	for i := len(a.Overlays.Stack) - 1; i >= 0; i-- {
		if m, ok := a.Overlays.Stack[i].View.(*ClienteFormModal); ok {
			return m
		}
	}
	return nil
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	switch {
	case a.State.Err != nil:
		return a.errorScreen()
	case a.State.Loading:
		return a.loadingScreen()
	}

	base := a.Table.View()
	if a.busy() {
		base += "\n" + a.spinner.View() + " " + Styles.Muted.Render(pendingLabel(a.State.Pending))
	} else if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		base += "\n" + style.Render(a.Status)
	}
	if top, ok := a.Overlays.Peek(); ok {
		base = a.place(top.View.View())
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler)
	}
	return base
}

func (a *appModelAdapter) loadingScreen() string {
	return a.place(a.spinner.View() + " " + Styles.Normal.Render("Cargando clientes..."))
}

func (a *appModelAdapter) errorScreen() string {
	content := Styles.Error.Render("Error: "+a.State.ErrorMessage()) + "\n\n" +
		Styles.Hint.Render("q: salir")
	return a.place(Styles.BoxDanger.Render(content))
}

// place centers content once the terminal size is known.
func (a *appModelAdapter) place(content string) string {
	if a.width <= 0 || a.height <= 0 {
		return content
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func pendingLabel(p session.Pending) string {
	switch p {
	case session.PendingCreate:
		return "Agregando cliente..."
	case session.PendingUpdate:
		return "Guardando cambios..."
	case session.PendingDelete:
		return "Eliminando cliente..."
	default:
		return "Cargando clientes..."
	}
}

// baseURL reports the remote's address for logging, when it has one.
func baseURL(r Remote) string {
	if b, ok := r.(interface{ BaseURL() string }); ok {
		return b.BaseURL()
	}
	return ""
}
