package ui

import (
	"context"

	"clientes/internal/cliente"
	"clientes/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Remote is the collection the UI mirrors. *api.Client implements it.
type Remote interface {
	List(ctx context.Context) ([]cliente.Cliente, error)
	Create(ctx context.Context, p cliente.Payload) (cliente.Cliente, error)
	Update(ctx context.Context, id string, p cliente.Payload) (cliente.Cliente, error)
	Remove(ctx context.Context, id string) error
}

// loadClientesCmd fetches the whole collection once, at startup.
func loadClientesCmd(ctx context.Context, r Remote) tea.Cmd {
	return func() tea.Msg {
		list, err := r.List(ctx)
		return ClientesLoadedMsg{Clientes: list, Err: err}
	}
}

// saveClienteCmd issues the create or update described by sub.
func saveClienteCmd(ctx context.Context, r Remote, sub session.Submission) tea.Cmd {
	return func() tea.Msg {
		var (
			result cliente.Cliente
			err    error
		)
		if sub.Editing {
			result, err = r.Update(ctx, sub.TargetID, sub.Payload)
		} else {
			result, err = r.Create(ctx, sub.Payload)
		}
		return ClienteSavedMsg{Submission: sub, Cliente: result, Err: err}
	}
}

// deleteClienteCmd removes one record.
func deleteClienteCmd(ctx context.Context, r Remote, id string) tea.Cmd {
	return func() tea.Msg {
		return ClienteDeletedMsg{ID: id, Err: r.Remove(ctx, id)}
	}
}
