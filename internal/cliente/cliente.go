// Package cliente defines the customer record managed by the UI, the request
// payload sent to the remote collection, and the form buffer that feeds it.
package cliente

import (
	"encoding/json"
	"fmt"
)

// Cliente is a customer record as returned by the remote collection.
// ID is assigned by the server; the client never generates one.
type Cliente struct {
	ID       string `json:"_id"`
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono,omitempty"`
}

// wireCliente accepts both the MongoDB-style "_id" and a plain "id".
type wireCliente struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
}

// UnmarshalJSON decodes a record, preferring "_id" over "id".
func (c *Cliente) UnmarshalJSON(data []byte) error {
	var w wireCliente
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id := w.MongoID
	if id == "" {
		id = w.ID
	}
	*c = Cliente{
		ID:       id,
		Nombre:   w.Nombre,
		Correo:   w.Correo,
		Telefono: w.Telefono,
	}
	return nil
}

// Label returns a short human-readable label ("Ana <ana@x.com>").
func (c Cliente) Label() string {
	if c.Correo == "" {
		return c.Nombre
	}
	return fmt.Sprintf("%s <%s>", c.Nombre, c.Correo)
}

// Payload is the request body for create and update: a record minus its id.
// Telefono is always sent, empty or not.
type Payload struct {
	Nombre   string `json:"nombre" validate:"required"`
	Correo   string `json:"correo" validate:"required,email"`
	Telefono string `json:"telefono"`
}

// IndexOf returns the position of the record with the given id, or -1.
func IndexOf(list []Cliente, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}
