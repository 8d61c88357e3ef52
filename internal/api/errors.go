package api

import (
	"errors"
	"fmt"
)

// Op names a remote collection operation.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// defaultMessage is the user-facing text for a failure with no server message.
func (o Op) defaultMessage() string {
	switch o {
	case OpList:
		return "Error al cargar clientes"
	case OpCreate, OpUpdate:
		return "Error al guardar"
	case OpRemove:
		return "Error al eliminar"
	default:
		return "Error de red"
	}
}

// NetworkError is a transport failure, an undecodable response, or a non-2xx
// status without a usable server message. Status is 0 when no response arrived.
type NetworkError struct {
	Op      Op
	Status  int
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError is a non-2xx create/update response whose body carried an
// "error" message. Message is the server's text, verbatim.
type ValidationError struct {
	Op      Op
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UserMessage returns the text to show for err: the server message for a
// ValidationError, the full NetworkError text otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Error()
	}
	return err.Error()
}
