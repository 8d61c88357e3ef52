package ui

import (
	"clientes/internal/cliente"
	"clientes/internal/session"
)

// ClientesLoadedMsg is sent when the initial GET /clientes completes.
type ClientesLoadedMsg struct {
	Clientes []cliente.Cliente
	Err      error
}

// ClienteSavedMsg is sent when a create or update completes.
// Submission is the snapshot the request was built from.
type ClienteSavedMsg struct {
	Submission session.Submission
	Cliente    cliente.Cliente
	Err        error
}

// ClienteDeletedMsg is sent when a delete completes.
type ClienteDeletedMsg struct {
	ID  string
	Err error
}

// ShowCreateClienteMsg opens the form modal in create mode (a, SPC c a).
type ShowCreateClienteMsg struct{}

// ShowEditClienteMsg opens the form modal for the selected record (e, Enter, SPC c e).
type ShowEditClienteMsg struct{}

// ShowDeleteClienteMsg asks for confirmation before deleting the selected record (d, SPC c d).
type ShowDeleteClienteMsg struct{}

// SubmitClienteMsg is sent by the form modal once its input passes validation.
type SubmitClienteMsg struct{}

// DeleteClienteMsg is sent when the user confirms a delete.
type DeleteClienteMsg struct {
	ID string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
