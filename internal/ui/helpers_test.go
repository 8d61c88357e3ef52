package ui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"clientes/internal/cliente"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// fakeRemote is an in-memory Remote that records every call.
type fakeRemote struct {
	mu    sync.Mutex
	calls []string

	list      []cliente.Cliente
	listErr   error
	createErr error
	updateErr error
	removeErr error
	nextID    int
}

func (f *fakeRemote) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeRemote) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRemote) List(ctx context.Context) ([]cliente.Cliente, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]cliente.Cliente(nil), f.list...), nil
}

func (f *fakeRemote) Create(ctx context.Context, p cliente.Payload) (cliente.Cliente, error) {
	f.record("create %s", p.Nombre)
	if f.createErr != nil {
		return cliente.Cliente{}, f.createErr
	}
	f.mu.Lock()
	f.nextID++
	id := fmt.Sprintf("new%d", f.nextID)
	f.mu.Unlock()
	return cliente.Cliente{ID: id, Nombre: p.Nombre, Correo: p.Correo, Telefono: p.Telefono}, nil
}

func (f *fakeRemote) Update(ctx context.Context, id string, p cliente.Payload) (cliente.Cliente, error) {
	f.record("update %s %s", id, p.Nombre)
	if f.updateErr != nil {
		return cliente.Cliente{}, f.updateErr
	}
	return cliente.Cliente{ID: id, Nombre: p.Nombre, Correo: p.Correo, Telefono: p.Telefono}, nil
}

func (f *fakeRemote) Remove(ctx context.Context, id string) error {
	f.record("remove %s", id)
	return f.removeErr
}

// newTestApp returns an app over remote with the initial load already applied.
func newTestApp(t *testing.T, remote *fakeRemote) (*AppModel, tea.Model) {
	t.Helper()
	a := NewAppModel(context.Background(), remote, zerolog.Nop())
	m := a.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	drain(t, m, m.Init())
	if a.State.Loading {
		t.Fatal("initial load did not complete")
	}
	return a, m
}

// cmdTimeout bounds how long drain waits on one command. Timer-driven
// commands (spinner ticks, cursor blink) take longer and are dropped.
const cmdTimeout = 50 * time.Millisecond

// drain runs cmd and feeds its messages back into m until no work is left.
// It returns every message it delivered.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var delivered []tea.Msg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("drain: too many steps")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg, ok := runCmd(c)
		if !ok || msg == nil {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case tea.QuitMsg:
			delivered = append(delivered, msg)
			continue
		}
		delivered = append(delivered, msg)
		_, next := m.Update(msg)
		queue = append(queue, next)
	}
	return delivered
}

func runCmd(c tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- c() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// press sends one key and drains the resulting commands.
func press(t *testing.T, m tea.Model, key string) []tea.Msg {
	t.Helper()
	_, cmd := m.Update(keyMsg(key))
	return drain(t, m, cmd)
}

func hasQuit(msgs []tea.Msg) bool {
	for _, msg := range msgs {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func sampleClientes() []cliente.Cliente {
	return []cliente.Cliente{
		{ID: "1", Nombre: "Ana", Correo: "ana@x.com", Telefono: "555"},
		{ID: "2", Nombre: "Luis", Correo: "luis@x.com"},
	}
}
