package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrCodeAlreadyExists  = errors.New("el código de equipo ya existe")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Rechazos del lote de check-in/check-out (sin cambio de estado).
	ErrCodeNotFound   = errors.New("código de equipo no encontrado")
	ErrAlreadyInBatch = errors.New("el equipo ya está en el lote")
	ErrMixedStatus    = errors.New("el lote debe ser homogéneo: todos disponibles o todos en uso")
	ErrEmptyBatch     = errors.New("el lote está vacío")
	ErrNoResponsible  = errors.New("el responsable es requerido")
)
