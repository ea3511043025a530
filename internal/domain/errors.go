package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Mapeo con la taxonomía del API: ErrInvalidInput = validación,
// ErrNotFound = lookup sin filas, ErrUnauthorized/ErrForbidden = autorización.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
