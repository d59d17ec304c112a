package treatments

import "errors"

var ErrNotFound = errors.New("treatment not found")

// ErrorKind clasifica los fallos de negocio de la prescripción.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindReference
	KindOverlap
)

// Error es el fallo de negocio que devuelve el orquestador: una clase y un
// mensaje humano. Los errores de infraestructura (storage) no se traducen,
// se propagan tal cual.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }
