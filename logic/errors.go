package logic

import "errors"

// Domain errors shared by the services and the stores. Controllers map
// these to HTTP status codes; everything else becomes a 500.
var (
	ErrNoEncontrado     = errors.New("registro no encontrado")
	ErrDuplicado        = errors.New("clave duplicada")
	ErrCursoDesconocido = errors.New("curso desconocido")
)
