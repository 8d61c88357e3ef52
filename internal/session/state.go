// Package session holds the client-side application state: the local mirror
// of the remote collection (List State), the edit buffer (Form State) and the
// Viewing/Creating/Editing state machine that ties them together.
//
// State is a plain value owned by the UI's root model and mutated only from
// the Bubble Tea event loop, so it needs no locking. Network calls happen
// elsewhere; State is told about their start and outcome.
package session

import (
	"clientes/internal/api"
	"clientes/internal/cliente"
)

// State is the whole client-side state of the application.
type State struct {
	Mode     Mode
	Clientes []cliente.Cliente // List State, server order plus incremental changes
	Form     cliente.Form      // Form State
	TargetID string            // record being edited; empty unless ModeEditing

	Loading   bool    // initial fetch in progress
	Pending   Pending // operation in flight
	PendingID string  // record targeted by the in-flight update/delete

	// Err is the single process-wide error. Once set, the error screen
	// replaces everything, an open modal included.
	Err error
}

// Submission is the snapshot taken when a submit starts. The outcome is
// applied according to the snapshot, not to whatever mode is current when
// the response arrives.
type Submission struct {
	Editing  bool
	TargetID string
	Payload  cliente.Payload
}

// New returns the startup state: viewing, with the initial load pending.
func New() *State {
	return &State{
		Mode:    ModeViewing,
		Loading: true,
		Pending: PendingLoad,
	}
}

// ModalOpen reports whether the create/edit modal is showing.
func (s *State) ModalOpen() bool {
	return s.Mode == ModeCreating || s.Mode == ModeEditing
}

// Find returns the record with the given id.
func (s *State) Find(id string) (cliente.Cliente, bool) {
	if i := cliente.IndexOf(s.Clientes, id); i >= 0 {
		return s.Clientes[i], true
	}
	return cliente.Cliente{}, false
}

// Loaded replaces List State with the server's list, in server order.
func (s *State) Loaded(list []cliente.Cliente) {
	s.Clientes = append([]cliente.Cliente(nil), list...)
	s.Loading = false
	s.Pending = PendingNone
	s.Err = nil
}

// LoadFailed records a failed initial load. There is no recovery short of a restart.
func (s *State) LoadFailed(err error) {
	s.Loading = false
	s.Pending = PendingNone
	s.Err = err
}

// OpenCreate moves Viewing -> Creating with an empty form.
func (s *State) OpenCreate() bool {
	if s.Mode != ModeViewing || s.Loading || s.Err != nil {
		return false
	}
	s.Form.Reset()
	s.TargetID = ""
	s.Mode = ModeCreating
	return true
}

// OpenEdit moves Viewing -> Editing with the form copied from the record.
// Unknown ids are ignored.
func (s *State) OpenEdit(id string) bool {
	if s.Mode != ModeViewing || s.Loading || s.Err != nil {
		return false
	}
	c, ok := s.Find(id)
	if !ok {
		return false
	}
	s.Form.FromCliente(c)
	s.TargetID = c.ID
	s.Mode = ModeEditing
	return true
}

// Cancel closes the modal, discarding the form. It never touches List State
// and does not abort a submit already in flight.
func (s *State) Cancel() bool {
	if !s.ModalOpen() {
		return false
	}
	s.closeModal()
	return true
}

// BeginSubmit snapshots the form for a create or update request.
// ok is false outside the modal or while another operation is in flight.
func (s *State) BeginSubmit() (sub Submission, ok bool) {
	if !s.ModalOpen() || s.Pending != PendingNone || s.Err != nil {
		return Submission{}, false
	}
	sub = Submission{
		Editing:  s.Mode == ModeEditing,
		TargetID: s.TargetID,
		Payload:  s.Form.Payload(),
	}
	if sub.Editing {
		s.Pending = PendingUpdate
		s.PendingID = sub.TargetID
	} else {
		s.Pending = PendingCreate
	}
	return sub, true
}

// Submitted merges the server's authoritative record into List State and
// closes the modal. Creates append (or replace, if the id is somehow already
// listed, so ids stay unique); updates replace the entry matching the
// snapshot's target id.
func (s *State) Submitted(sub Submission, result cliente.Cliente) {
	if sub.Editing {
		if i := cliente.IndexOf(s.Clientes, sub.TargetID); i >= 0 {
			s.Clientes[i] = result
		}
	} else if i := cliente.IndexOf(s.Clientes, result.ID); i >= 0 {
		s.Clientes[i] = result
	} else {
		s.Clientes = append(s.Clientes, result)
	}
	s.clearPending()
	s.closeModal()
}

// BeginDelete marks a delete of the given record as in flight. Deleting is
// only possible while viewing, after the caller has confirmed with the user.
func (s *State) BeginDelete(id string) bool {
	if s.Mode != ModeViewing || s.Pending != PendingNone || s.Err != nil {
		return false
	}
	if cliente.IndexOf(s.Clientes, id) < 0 {
		return false
	}
	s.Pending = PendingDelete
	s.PendingID = id
	return true
}

// Deleted removes the record from List State, keeping the order of the rest.
func (s *State) Deleted(id string) {
	if i := cliente.IndexOf(s.Clientes, id); i >= 0 {
		s.Clientes = append(s.Clientes[:i:i], s.Clientes[i+1:]...)
	}
	s.clearPending()
}

// Fail records a failed create/update/delete. The modal stays in its mode and
// the form keeps what the user typed.
func (s *State) Fail(err error) {
	s.clearPending()
	s.Err = err
}

// ErrorMessage is the text of the process-wide error, or "".
func (s *State) ErrorMessage() string {
	return api.UserMessage(s.Err)
}

func (s *State) closeModal() {
	s.Mode = ModeViewing
	s.TargetID = ""
	s.Form.Reset()
}

func (s *State) clearPending() {
	s.Pending = PendingNone
	s.PendingID = ""
}
