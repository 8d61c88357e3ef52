package cliente

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliente_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Cliente
	}{
		{
			name: "mongo id",
			in:   `{"_id":"65f0","nombre":"Ana","correo":"ana@x.com","telefono":"555"}`,
			want: Cliente{ID: "65f0", Nombre: "Ana", Correo: "ana@x.com", Telefono: "555"},
		},
		{
			name: "plain id",
			in:   `{"id":"1","nombre":"Ana","correo":"ana@x.com"}`,
			want: Cliente{ID: "1", Nombre: "Ana", Correo: "ana@x.com"},
		},
		{
			name: "_id wins over id",
			in:   `{"_id":"a","id":"b","nombre":"Ana","correo":"ana@x.com"}`,
			want: Cliente{ID: "a", Nombre: "Ana", Correo: "ana@x.com"},
		},
		{
			name: "extra fields ignored",
			in:   `{"_id":"1","nombre":"Ana","correo":"ana@x.com","__v":0}`,
			want: Cliente{ID: "1", Nombre: "Ana", Correo: "ana@x.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Cliente
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCliente_MarshalUsesMongoID(t *testing.T) {
	b, err := json.Marshal(Cliente{ID: "1", Nombre: "Ana", Correo: "ana@x.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"1","nombre":"Ana","correo":"ana@x.com"}`, string(b))
}

func TestPayload_AlwaysSendsTelefono(t *testing.T) {
	b, err := json.Marshal(Payload{Nombre: "Bob", Correo: "bob@x.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"nombre":"Bob","correo":"bob@x.com","telefono":""}`, string(b))
}

func TestIndexOf(t *testing.T) {
	list := []Cliente{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	assert.Equal(t, 1, IndexOf(list, "2"))
	assert.Equal(t, -1, IndexOf(list, "9"))
	assert.Equal(t, -1, IndexOf(nil, "1"))
}

func TestForm_FromClienteAndReset(t *testing.T) {
	var f Form
	f.FromCliente(Cliente{ID: "1", Nombre: "Ana", Correo: "ana@x.com"})
	assert.Equal(t, Form{Nombre: "Ana", Correo: "ana@x.com", Telefono: ""}, f)

	f.Set(FieldTelefono, "555")
	assert.Equal(t, "555", f.Get(FieldTelefono))

	f.Reset()
	assert.True(t, f.IsEmpty())
}

func TestForm_PayloadIsACopy(t *testing.T) {
	f := Form{Nombre: "Ana", Correo: " ana@x.com ", Telefono: "1"}
	p := f.Payload()
	f.Nombre = "changed"
	assert.Equal(t, "Ana", p.Nombre)
	assert.Equal(t, "ana@x.com", p.Correo)
}

func TestForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      Form
		wantField Field
		wantMsg   string
	}{
		{name: "valid", form: Form{Nombre: "Ana", Correo: "ana@x.com"}},
		{name: "valid with telefono", form: Form{Nombre: "Ana", Correo: "ana@x.com", Telefono: "+52 55"}},
		{name: "missing nombre", form: Form{Correo: "ana@x.com"}, wantField: FieldNombre, wantMsg: "Nombre completo es obligatorio"},
		{name: "blank nombre", form: Form{Nombre: "   ", Correo: "ana@x.com"}, wantField: FieldNombre, wantMsg: "Nombre completo es obligatorio"},
		{name: "missing correo", form: Form{Nombre: "Ana"}, wantField: FieldCorreo, wantMsg: "Correo electrónico es obligatorio"},
		{name: "bad correo", form: Form{Nombre: "Ana", Correo: "ana"}, wantField: FieldCorreo, wantMsg: "Correo electrónico no es un correo válido"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			var fe *FieldError
			require.True(t, errors.As(err, &fe), "expected *FieldError, got %v", err)
			assert.Equal(t, tt.wantField, fe.Field)
			assert.Equal(t, tt.wantMsg, fe.Message)
		})
	}
}
