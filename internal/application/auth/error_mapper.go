package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/delivery-pro/internal/domain"
)

// Los fallos de credenciales se aplanan en una sola respuesta: distinguir
// "usuario no existe" de "password incorrecto" permitiría enumerar emails
// registrados. Los errores de estado de cuenta sí se distinguen (soporte/UX).

// MappedError respuesta de error de autenticación hacia el cliente.
type MappedError struct {
	Status  int
	Code    string
	Message string
}

// Tabla fija código → mensaje de los fallos de autenticación. Nunca se
// reintenta automáticamente.
var (
	errInvalidCredentials = MappedError{fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas"}
	errAccountInactive    = MappedError{fiber.StatusForbidden, "ACCOUNT_INACTIVE", "cuenta inactiva o suspendida"}
	errEmailExists        = MappedError{fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado"}
	errBootstrapFailed    = MappedError{fiber.StatusUnauthorized, "BOOTSTRAP_FAILED", "no se pudo resolver el perfil, intente de nuevo"}
	errInternal           = MappedError{fiber.StatusInternalServerError, "INTERNAL", "error interno"}
)

// MapAuthError traduce un error de dominio a la respuesta HTTP fija.
func MapAuthError(err error) MappedError {
	switch {
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return errInvalidCredentials
	case errors.Is(err, domain.ErrForbidden):
		return errAccountInactive
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return errEmailExists
	case errors.Is(err, domain.ErrBootstrap):
		return errBootstrapFailed
	default:
		return errInternal
	}
}
