package ui

import (
	"clientes/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// handleClientesLoaded fills List State from the initial fetch, or switches
// to the error screen.
func (a *appModelAdapter) handleClientesLoaded(msg ClientesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Log.Error().Err(msg.Err).Msg("load clientes")
		a.State.LoadFailed(msg.Err)
		return a, nil
	}
	a.State.Loaded(msg.Clientes)
	a.Table.Clamp()
	a.Log.Info().Int("count", len(msg.Clientes)).Msg("clientes loaded")
	return a, nil
}

// handleClienteSaved merges a create/update result into List State.
// The outcome follows the submission snapshot, even if the modal was closed meanwhile.
func (a *appModelAdapter) handleClienteSaved(msg ClienteSavedMsg) (tea.Model, tea.Cmd) {
	op := api.OpCreate
	if msg.Submission.Editing {
		op = api.OpUpdate
	}
	if m := a.formModal(); m != nil {
		m.Pending = false
	}
	if msg.Err != nil {
		a.Log.Error().Err(msg.Err).Str("op", string(op)).Str("id", msg.Submission.TargetID).Msg("save cliente")
		a.State.Fail(msg.Err)
		return a, nil
	}
	a.State.Submitted(msg.Submission, msg.Cliente)
	if !a.State.ModalOpen() {
		a.Overlays.RemoveIf(isFormModal)
	}
	a.Table.SelectID(msg.Cliente.ID)
	if msg.Submission.Editing {
		a.setStatus("Cliente actualizado", false)
	} else {
		a.setStatus("Cliente agregado", false)
	}
	a.Log.Info().Str("op", string(op)).Str("id", msg.Cliente.ID).Msg("cliente saved")
	return a, nil
}

// handleClienteDeleted removes the record from List State.
func (a *appModelAdapter) handleClienteDeleted(msg ClienteDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.Log.Error().Err(msg.Err).Str("id", msg.ID).Msg("delete cliente")
		a.State.Fail(msg.Err)
		return a, nil
	}
	a.State.Deleted(msg.ID)
	a.Table.Clamp()
	a.setStatus("Cliente eliminado", false)
	a.Log.Info().Str("id", msg.ID).Msg("cliente deleted")
	return a, nil
}

// handleShowCreate opens an empty form modal.
func (a *appModelAdapter) handleShowCreate() (tea.Model, tea.Cmd) {
	if !a.State.OpenCreate() {
		return a, nil
	}
	a.setStatus("", false)
	modal := NewClienteFormModal(false, a.State.Form)
	modal.Spinner = a.spinnerFrame
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleShowEdit opens the form modal pre-filled from the selected record.
func (a *appModelAdapter) handleShowEdit() (tea.Model, tea.Cmd) {
	c, ok := a.Table.SelectedCliente()
	if !ok || !a.State.OpenEdit(c.ID) {
		return a, nil
	}
	a.setStatus("", false)
	modal := NewClienteFormModal(true, a.State.Form)
	modal.Spinner = a.spinnerFrame
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleShowDelete asks for confirmation before deleting the selected record.
func (a *appModelAdapter) handleShowDelete() (tea.Model, tea.Cmd) {
	if a.State.ModalOpen() || a.Overlays.Len() > 0 {
		return a, nil
	}
	c, ok := a.Table.SelectedCliente()
	if !ok {
		return a, nil
	}
	a.setStatus("", false)
	a.Overlays.Push(Overlay{View: NewDeleteClienteConfirmModal(c), Dismiss: "esc"})
	return a, nil
}

// handleSubmit snapshots the form and sends the create or update.
func (a *appModelAdapter) handleSubmit() (tea.Model, tea.Cmd) {
	a.syncForm()
	sub, ok := a.State.BeginSubmit()
	if !ok {
		return a, nil
	}
	if m := a.formModal(); m != nil {
		m.Pending = true
	}
	return a, tea.Batch(a.spinner.Tick, saveClienteCmd(a.ctx, a.Remote, sub))
}

// handleDelete sends the confirmed delete.
func (a *appModelAdapter) handleDelete(msg DeleteClienteMsg) (tea.Model, tea.Cmd) {
	a.Overlays.RemoveIf(isConfirmModal)
	if !a.State.BeginDelete(msg.ID) {
		return a, nil
	}
	return a, tea.Batch(a.spinner.Tick, deleteClienteCmd(a.ctx, a.Remote, msg.ID))
}

// handleDismissModal closes the top modal. Closing the form discards it.
func (a *appModelAdapter) handleDismissModal() (tea.Model, tea.Cmd) {
	top, ok := a.Overlays.Pop()
	if !ok {
		return a, nil
	}
	if isFormModal(top.View) {
		a.State.Cancel()
	}
	return a, nil
}

func (a *appModelAdapter) spinnerFrame() string {
	return a.spinner.View()
}

func (a *appModelAdapter) setStatus(s string, isError bool) {
	a.Status = s
	a.StatusIsError = isError
}

func isFormModal(v View) bool {
	_, ok := v.(*ClienteFormModal)
	return ok
}

func isConfirmModal(v View) bool {
	_, ok := v.(*ConfirmModal)
	return ok
}
