package session

// Mode is the top-level interaction mode of the client list.
type Mode int

const (
	// ModeViewing: modal closed, list navigable.
	ModeViewing Mode = iota
	// ModeCreating: modal open with an empty form and no target id.
	ModeCreating
	// ModeEditing: modal open with the form copied from the target record.
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "Viewing"
	case ModeCreating:
		return "Creating"
	case ModeEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

// Pending names the network operation currently in flight, if any.
type Pending int

const (
	PendingNone Pending = iota
	PendingLoad
	PendingCreate
	PendingUpdate
	PendingDelete
)

func (p Pending) String() string {
	switch p {
	case PendingNone:
		return "none"
	case PendingLoad:
		return "load"
	case PendingCreate:
		return "create"
	case PendingUpdate:
		return "update"
	case PendingDelete:
		return "delete"
	default:
		return "unknown"
	}
}
