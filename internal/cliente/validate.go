package cliente

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one violated constraint of the form.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the form before it is sent: nombre and correo are required
// and correo must look like an email. Telefono is free text.
// It returns the first violation as a *FieldError, or nil.
func (f Form) Validate() error {
	p := f.Payload()
	// validator treats whitespace-only strings as present.
	if strings.TrimSpace(p.Nombre) == "" {
		p.Nombre = ""
	}
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return fmt.Errorf("validate form: %w", err)
	}
	return fieldError(ve[0])
}

func fieldError(fe validator.FieldError) *FieldError {
	field := fieldByName(fe.Field())
	label := strings.TrimSuffix(field.Label(), "*")
	switch fe.Tag() {
	case "required":
		return &FieldError{Field: field, Message: fmt.Sprintf("%s es obligatorio", label)}
	case "email":
		return &FieldError{Field: field, Message: fmt.Sprintf("%s no es un correo válido", label)}
	default:
		return &FieldError{Field: field, Message: fmt.Sprintf("%s no es válido", label)}
	}
}

func fieldByName(name string) Field {
	for _, f := range Fields {
		if f.String() == name {
			return f
		}
	}
	return FieldNombre
}
