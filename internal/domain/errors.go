package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
// La capa HTTP traduce cada familia a su código de estado.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autenticado")
	ErrForbidden    = errors.New("acceso denegado")
)

// Errores concretos. Todos satisfacen errors.Is contra su familia.
var (
	ErrPartnerNotFound   = kindError(ErrNotFound, "socio no encontrado o inactivo")
	ErrProductNotFound   = kindError(ErrNotFound, "producto no encontrado o inactivo")
	ErrEmployeeNotFound  = kindError(ErrNotFound, "empleado no encontrado o inactivo")
	ErrRecordNotFound    = kindError(ErrNotFound, "registro no encontrado")
	ErrPrincipalNotFound = kindError(ErrNotFound, "usuario no encontrado")

	ErrInvalidCredentials = kindError(ErrUnauthorized, "credenciales inválidas")
	ErrInvalidToken       = kindError(ErrUnauthorized, "token inválido o expirado")
	ErrMissingRole        = kindError(ErrUnauthorized, "el token no contiene rol")

	ErrSuperAdminRequired = kindError(ErrForbidden, "acceso denegado. Se requiere rol de super-admin")
	ErrAdminRequired      = kindError(ErrForbidden, "acceso denegado. Se requiere rol de administrador")
)

type taggedError struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &taggedError{kind: kind, msg: msg}
}

func (e *taggedError) Error() string { return e.msg }

// Is permite errors.Is(err, ErrNotFound) sobre errores concretos.
func (e *taggedError) Is(target error) bool { return target == e.kind }

// FieldError describe un campo inválido.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los errores de validación por campo (HTTP 400).
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye un error de validación de un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// DuplicateError restricción de unicidad violada sobre Field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string { return e.Field + " ya existe" }

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }
