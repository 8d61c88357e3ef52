package cliente

import "strings"

// Field identifies one input of the form.
type Field int

const (
	FieldNombre Field = iota
	FieldCorreo
	FieldTelefono
)

// Fields lists the form inputs in display (and tab) order.
var Fields = []Field{FieldNombre, FieldCorreo, FieldTelefono}

func (f Field) String() string {
	switch f {
	case FieldNombre:
		return "nombre"
	case FieldCorreo:
		return "correo"
	case FieldTelefono:
		return "telefono"
	default:
		return "unknown"
	}
}

// Label is the caption shown next to the input; required fields carry a '*'.
func (f Field) Label() string {
	switch f {
	case FieldNombre:
		return "Nombre completo*"
	case FieldCorreo:
		return "Correo electrónico*"
	case FieldTelefono:
		return "Teléfono"
	default:
		return ""
	}
}

// Placeholder is the example value shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldNombre:
		return "Ej: Juan Pérez"
	case FieldCorreo:
		return "Ej: juan@empresa.com"
	case FieldTelefono:
		return "Ej: +52 55 1234 5678"
	default:
		return ""
	}
}

// Form is the transient edit buffer shared by the create and edit flows.
type Form struct {
	Nombre   string
	Correo   string
	Telefono string
}

// Reset empties every field.
func (f *Form) Reset() {
	*f = Form{}
}

// FromCliente fills the buffer from a record. A missing telefono becomes "".
func (f *Form) FromCliente(c Cliente) {
	*f = Form{
		Nombre:   c.Nombre,
		Correo:   c.Correo,
		Telefono: c.Telefono,
	}
}

// IsEmpty reports whether every field is blank.
func (f Form) IsEmpty() bool {
	return f == Form{}
}

// Get returns the value of a field.
func (f Form) Get(field Field) string {
	switch field {
	case FieldNombre:
		return f.Nombre
	case FieldCorreo:
		return f.Correo
	case FieldTelefono:
		return f.Telefono
	default:
		return ""
	}
}

// Set replaces the value of a field.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldNombre:
		f.Nombre = value
	case FieldCorreo:
		f.Correo = value
	case FieldTelefono:
		f.Telefono = value
	}
}

// Payload copies the buffer into a new request payload.
// Surrounding whitespace is trimmed, matching what a browser submits for
// type=email inputs; nombre and telefono are sent as typed.
func (f Form) Payload() Payload {
	return Payload{
		Nombre:   f.Nombre,
		Correo:   strings.TrimSpace(f.Correo),
		Telefono: f.Telefono,
	}
}
