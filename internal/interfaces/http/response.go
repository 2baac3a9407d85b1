package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asoadmin-api/internal/application/dto"
	"github.com/jhoicas/asoadmin-api/internal/domain"
	"github.com/jhoicas/asoadmin-api/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidBody  = "INVALID_BODY"
	CodeDuplicate    = "DUPLICATE"
	CodeNotFound     = "NOT_FOUND"
	CodeMissingToken = "MISSING_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeMissingRole  = "MISSING_ROLE"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL_ERROR"
)

const msgInvalidInput = "Datos de entrada inválidos"

// respond escribe el envoltorio de éxito.
func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

// fail escribe el envoltorio de error.
func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// ErrorHandler traduce los errores que devuelven los handlers a respuestas HTTP.
// Con dev=true se incluye el detalle del error interno.
func ErrorHandler(log *logger.Logger, dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := mapError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Interface("request_id", c.Locals("requestid")).
				Msg("error interno")
			if dev {
				body.Error = err.Error()
			}
		}
		body.Timestamp = time.Now().UTC()
		return c.Status(status).JSON(body)
	}
}

func mapError(err error) (int, dto.ErrorResponse) {
	var (
		verr  *domain.ValidationError
		dup   *domain.DuplicateError
		fiErr *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: msgInvalidInput, Errors: verr.Fields}
	case errors.As(err, &dup):
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    CodeDuplicate,
			Message: dup.Error(),
			Errors:  []domain.FieldError{{Field: dup.Field, Message: dup.Error()}},
		}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: msgInvalidInput}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: capitalize(err.Error())}
	case errors.Is(err, domain.ErrMissingRole):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeMissingRole, Message: capitalize(err.Error())}
	case errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeInvalidToken, Message: capitalize(err.Error())}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Message: capitalize(err.Error())}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: CodeForbidden, Message: capitalize(err.Error())}
	case errors.As(err, &fiErr):
		code := CodeInternal
		switch {
		case fiErr.Code == fiber.StatusNotFound:
			code = CodeNotFound
		case fiErr.Code < fiber.StatusInternalServerError:
			code = CodeInvalidBody
		}
		return fiErr.Code, dto.ErrorResponse{Code: code, Message: fiErr.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: "Error interno del servidor"}
	}
}

// capitalize pone en mayúscula la primera letra si es ASCII.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

// bodyError error de cuerpo JSON ilegible.
func bodyError(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido: "+err.Error())
}
