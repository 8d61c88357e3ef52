package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clientes/internal/api"
	"clientes/internal/cliente"
	"clientes/internal/session"

	"github.com/rs/zerolog"
)

func TestApp_InitialLoad(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a := NewAppModel(context.Background(), remote, zerolog.Nop())
	m := a.AsTeaModel()

	if !strings.Contains(m.View(), "Cargando clientes...") {
		t.Errorf("expected loading screen before the first response, got:\n%s", m.View())
	}
	drain(t, m, m.Init())

	if a.State.Loading {
		t.Fatal("expected loading to finish")
	}
	if len(a.State.Clientes) != 2 || a.State.Clientes[0].ID != "1" || a.State.Clientes[1].ID != "2" {
		t.Errorf("unexpected list: %+v", a.State.Clientes)
	}
	view := m.View()
	for _, want := range []string{"Clientes (2)", "Ana", "luis@x.com", "ID: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if got := remote.Calls(); len(got) != 1 || got[0] != "list" {
		t.Errorf("calls = %v, want [list]", got)
	}
}

func TestApp_EmptyList(t *testing.T) {
	_, m := newTestApp(t, &fakeRemote{})
	if !strings.Contains(m.View(), "No hay clientes") {
		t.Errorf("expected empty state, got:\n%s", m.View())
	}
}

func TestApp_LoadFailureShowsErrorScreen(t *testing.T) {
	remote := &fakeRemote{listErr: &api.NetworkError{Op: api.OpList, Message: "Error al cargar clientes", Err: errors.New("dial tcp: refused")}}
	a := NewAppModel(context.Background(), remote, zerolog.Nop())
	m := a.AsTeaModel()
	drain(t, m, m.Init())

	if a.State.Loading || a.State.Err == nil {
		t.Fatalf("expected error state, loading=%v err=%v", a.State.Loading, a.State.Err)
	}
	view := m.View()
	if !strings.Contains(view, "Error: Error al cargar clientes") {
		t.Errorf("expected error screen, got:\n%s", view)
	}

	// Only quit keys do anything on the error screen.
	press(t, m, "a")
	if a.State.Mode != session.ModeViewing || a.Overlays.Len() != 0 {
		t.Errorf("a should be inert on the error screen")
	}
	if !hasQuit(press(t, m, "q")) {
		t.Error("q should quit from the error screen")
	}
}

func TestApp_CtrlCAlwaysQuits(t *testing.T) {
	a, m := newTestApp(t, &fakeRemote{list: sampleClientes()})
	press(t, m, "a")
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected form modal")
	}
	if !hasQuit(press(t, m, "ctrl+c")) {
		t.Error("ctrl+c should quit with a modal open")
	}
}

func TestApp_QInsideFormIsText(t *testing.T) {
	a, m := newTestApp(t, &fakeRemote{list: sampleClientes()})
	press(t, m, "a")
	if hasQuit(press(t, m, "q")) {
		t.Error("q inside the form should be typed, not quit")
	}
	if a.State.Form.Nombre != "q" {
		t.Errorf("nombre = %q, want q", a.State.Form.Nombre)
	}
}

func TestApp_CreateScenario(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)

	press(t, m, "a")
	if a.State.Mode != session.ModeCreating {
		t.Fatalf("mode = %v, want Creating", a.State.Mode)
	}
	top, _ := a.Overlays.Peek()
	modal, ok := top.View.(*ClienteFormModal)
	if !ok {
		t.Fatalf("expected ClienteFormModal on overlay, got %T", top.View)
	}
	if modal.Title() != "Nuevo cliente" || modal.SubmitLabel() != "Agregar cliente" {
		t.Errorf("title=%q submit=%q", modal.Title(), modal.SubmitLabel())
	}

	typeText(m, "Carla")
	press(t, m, "tab")
	typeText(m, "carla@x.com")
	press(t, m, "tab")
	typeText(m, "123")
	if a.State.Form != (cliente.Form{Nombre: "Carla", Correo: "carla@x.com", Telefono: "123"}) {
		t.Fatalf("form state not synced: %+v", a.State.Form)
	}

	press(t, m, "enter")

	if got := remote.Calls(); len(got) != 2 || got[1] != "create Carla" {
		t.Fatalf("calls = %v, want [list create Carla]", got)
	}
	if a.State.Mode != session.ModeViewing || a.Overlays.Len() != 0 {
		t.Errorf("modal should close after create: mode=%v overlays=%d", a.State.Mode, a.Overlays.Len())
	}
	if len(a.State.Clientes) != 3 || a.State.Clientes[2].Nombre != "Carla" {
		t.Errorf("expected Carla appended, got %+v", a.State.Clientes)
	}
	if a.State.Form != (cliente.Form{}) {
		t.Errorf("form should reset, got %+v", a.State.Form)
	}
	if a.Status != "Cliente agregado" {
		t.Errorf("status = %q", a.Status)
	}
	if sel, _ := a.Table.SelectedCliente(); sel.Nombre != "Carla" {
		t.Errorf("cursor should follow the new record, got %q", sel.Nombre)
	}
}

func TestApp_CreateValidationBlocksRequest(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)

	press(t, m, "a")
	press(t, m, "ctrl+s")

	if got := remote.Calls(); len(got) != 1 {
		t.Errorf("invalid form should not reach the remote, calls = %v", got)
	}
	top, _ := a.Overlays.Peek()
	modal := top.View.(*ClienteFormModal)
	if modal.Invalid != "Nombre completo es obligatorio" {
		t.Errorf("invalid = %q", modal.Invalid)
	}
	if a.State.Mode != session.ModeCreating {
		t.Errorf("modal should stay open")
	}
}

func TestApp_EditScenario(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)

	press(t, m, "j")
	press(t, m, "e")
	if a.State.Mode != session.ModeEditing || a.State.TargetID != "2" {
		t.Fatalf("mode=%v target=%q", a.State.Mode, a.State.TargetID)
	}
	if a.State.Form.Nombre != "Luis" || a.State.Form.Correo != "luis@x.com" {
		t.Fatalf("form not pre-filled: %+v", a.State.Form)
	}
	if !strings.Contains(m.View(), "Editar cliente") {
		t.Errorf("expected edit title in view:\n%s", m.View())
	}

	for range "Luis" {
		press(t, m, "backspace")
	}
	typeText(m, "Luisa")
	press(t, m, "ctrl+s")

	if got := remote.Calls(); len(got) != 2 || got[1] != "update 2 Luisa" {
		t.Fatalf("calls = %v", got)
	}
	if a.State.Clientes[1].Nombre != "Luisa" || len(a.State.Clientes) != 2 {
		t.Errorf("expected in-place update, got %+v", a.State.Clientes)
	}
	if a.State.Mode != session.ModeViewing || a.Overlays.Len() != 0 {
		t.Errorf("modal should close after update")
	}
	if a.Status != "Cliente actualizado" {
		t.Errorf("status = %q", a.Status)
	}
}

func TestApp_EnterOpensEdit(t *testing.T) {
	a, m := newTestApp(t, &fakeRemote{list: sampleClientes()})
	press(t, m, "enter")
	if a.State.Mode != session.ModeEditing || a.State.TargetID != "1" {
		t.Errorf("mode=%v target=%q", a.State.Mode, a.State.TargetID)
	}
}

func TestApp_CancelIssuesNoRequest(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)
	before := append([]cliente.Cliente(nil), a.State.Clientes...)

	press(t, m, "e")
	typeText(m, "zzz")
	press(t, m, "esc")

	if a.State.Mode != session.ModeViewing || a.Overlays.Len() != 0 {
		t.Errorf("esc should close the modal")
	}
	if a.State.Form != (cliente.Form{}) {
		t.Errorf("form should be discarded, got %+v", a.State.Form)
	}
	if got := remote.Calls(); len(got) != 1 {
		t.Errorf("cancel should not call the remote, calls = %v", got)
	}
	for i := range before {
		if a.State.Clientes[i] != before[i] {
			t.Errorf("list changed on cancel: %+v", a.State.Clientes)
		}
	}
}

func TestApp_DeleteScenario(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)

	press(t, m, "d")
	top, ok := a.Overlays.Peek()
	if !ok {
		t.Fatal("expected confirmation modal")
	}
	if _, ok := top.View.(*ConfirmModal); !ok {
		t.Fatalf("expected ConfirmModal, got %T", top.View)
	}
	if !strings.Contains(m.View(), "¿Confirmas que deseas eliminar este cliente?") {
		t.Errorf("confirmation text missing:\n%s", m.View())
	}

	press(t, m, "y")

	if got := remote.Calls(); len(got) != 2 || got[1] != "remove 1" {
		t.Fatalf("calls = %v", got)
	}
	if len(a.State.Clientes) != 1 || a.State.Clientes[0].ID != "2" {
		t.Errorf("expected only Luis left, got %+v", a.State.Clientes)
	}
	if a.Overlays.Len() != 0 {
		t.Errorf("confirmation should close")
	}
	if a.Status != "Cliente eliminado" {
		t.Errorf("status = %q", a.Status)
	}
}

func TestApp_DeleteDeclined(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)

	press(t, m, "d")
	press(t, m, "n")

	if a.Overlays.Len() != 0 {
		t.Errorf("n should close the confirmation")
	}
	if got := remote.Calls(); len(got) != 1 {
		t.Errorf("declined delete should not call the remote, calls = %v", got)
	}
	if len(a.State.Clientes) != 2 {
		t.Errorf("list changed: %+v", a.State.Clientes)
	}
}

func TestApp_DeleteOnEmptyListDoesNothing(t *testing.T) {
	a, m := newTestApp(t, &fakeRemote{})
	press(t, m, "d")
	press(t, m, "e")
	if a.Overlays.Len() != 0 || a.State.Mode != session.ModeViewing {
		t.Errorf("no record selected: overlays=%d mode=%v", a.Overlays.Len(), a.State.Mode)
	}
}

func TestApp_SaveFailureReplacesModalWithError(t *testing.T) {
	remote := &fakeRemote{
		list:      sampleClientes(),
		createErr: &api.ValidationError{Op: api.OpCreate, Status: 400, Message: "correo duplicado"},
	}
	a, m := newTestApp(t, remote)

	press(t, m, "a")
	typeText(m, "Carla")
	press(t, m, "tab")
	typeText(m, "ana@x.com")
	press(t, m, "ctrl+s")

	if a.State.Err == nil {
		t.Fatal("expected error state")
	}
	// The modal state survives with the typed input, but the error screen hides it.
	if a.State.Mode != session.ModeCreating || a.State.Form.Nombre != "Carla" {
		t.Errorf("mode=%v form=%+v", a.State.Mode, a.State.Form)
	}
	if len(a.State.Clientes) != 2 {
		t.Errorf("list should be unchanged, got %+v", a.State.Clientes)
	}
	view := m.View()
	if !strings.Contains(view, "Error: correo duplicado") || strings.Contains(view, "Nuevo cliente") {
		t.Errorf("expected error screen over the modal, got:\n%s", view)
	}

	// The hidden modal is inert.
	press(t, m, "ctrl+s")
	typeText(m, "x")
	if got := remote.Calls(); len(got) != 2 {
		t.Errorf("no further requests expected, calls = %v", got)
	}
	if a.State.Form.Nombre != "Carla" {
		t.Errorf("form should not change behind the error screen, got %q", a.State.Form.Nombre)
	}
}

func TestApp_DeleteFailureShowsError(t *testing.T) {
	remote := &fakeRemote{
		list:      sampleClientes(),
		removeErr: &api.NetworkError{Op: api.OpRemove, Status: 500, Message: "Error al eliminar"},
	}
	a, m := newTestApp(t, remote)

	press(t, m, "d")
	press(t, m, "enter")

	if len(a.State.Clientes) != 2 {
		t.Errorf("list should be unchanged, got %+v", a.State.Clientes)
	}
	if !strings.Contains(m.View(), "Error: Error al eliminar") {
		t.Errorf("expected error screen, got:\n%s", m.View())
	}
}

func TestApp_SubmitWhilePendingIsIgnored(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)
	press(t, m, "a")
	typeText(m, "Carla")
	press(t, m, "tab")
	typeText(m, "carla@x.com")

	// Start the submit without running the request.
	_, cmd := m.Update(SubmitClienteMsg{})
	if cmd == nil || a.State.Pending != session.PendingCreate {
		t.Fatalf("expected create in flight, pending=%v", a.State.Pending)
	}
	_, again := m.Update(SubmitClienteMsg{})
	if again != nil {
		t.Error("second submit should be ignored while the first is in flight")
	}
	drain(t, m, cmd)
	if got := remote.Calls(); len(got) != 2 {
		t.Errorf("calls = %v, want one create", got)
	}
}

func TestApp_CloseDuringSubmitStillApplies(t *testing.T) {
	remote := &fakeRemote{list: sampleClientes()}
	a, m := newTestApp(t, remote)
	press(t, m, "a")
	typeText(m, "Carla")
	press(t, m, "tab")
	typeText(m, "carla@x.com")

	_, cmd := m.Update(SubmitClienteMsg{})
	press(t, m, "esc")
	if a.State.Mode != session.ModeViewing {
		t.Fatalf("esc should close the modal during submit")
	}
	drain(t, m, cmd)

	if len(a.State.Clientes) != 3 || a.State.Clientes[2].Nombre != "Carla" {
		t.Errorf("in-flight create should still be applied, got %+v", a.State.Clientes)
	}
	if a.State.Pending != session.PendingNone {
		t.Errorf("pending = %v", a.State.Pending)
	}
}

func TestApp_LeaderHelpBar(t *testing.T) {
	_, m := newTestApp(t, &fakeRemote{list: sampleClientes()})
	press(t, m, " ")
	if !strings.Contains(m.View(), "Cliente") || !strings.Contains(m.View(), "Salir") {
		t.Errorf("expected leader help bar:\n%s", m.View())
	}
	press(t, m, "c")
	press(t, m, "a")
	if !strings.Contains(m.View(), "Nuevo cliente") {
		t.Errorf("SPC c a should open the create modal:\n%s", m.View())
	}
}

func TestApp_SpinnerStopsWhenIdle(t *testing.T) {
	a, m := newTestApp(t, &fakeRemote{list: sampleClientes()})
	if a.busy() {
		t.Fatal("expected idle after load")
	}
	_, cmd := m.Update(a.spinner.Tick())
	if cmd != nil {
		t.Error("idle app should not schedule spinner ticks")
	}
}

func TestApp_NavigationMovesCursor(t *testing.T) {
	a, m := newTestApp(t, &fakeRemote{list: sampleClientes()})
	press(t, m, "j")
	if a.Table.Selected != 1 {
		t.Errorf("selected = %d, want 1", a.Table.Selected)
	}
	press(t, m, "j")
	if a.Table.Selected != 1 {
		t.Errorf("cursor should stop at the last row, got %d", a.Table.Selected)
	}
	press(t, m, "k")
	if a.Table.Selected != 0 {
		t.Errorf("selected = %d, want 0", a.Table.Selected)
	}
}
