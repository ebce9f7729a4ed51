package server

import (
	"bytes"
	"errors"
	"log/slog"

	"holocron/internal/middleware"
	"holocron/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("El parámetro 'id' debe ser un entero positivo"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseBody rejects absent/empty payloads with a 400 before decoding into
// dest. A body of `{}` or `null` counts as empty.
func (s *Server) parseBody(c *fiber.Ctx, dest any) error {
	raw := bytes.TrimSpace(c.Body())
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte("{}")) {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("El body no puede estar vacío"))
		return errResponseWritten
	}
	if err := c.BodyParser(dest); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("El body debe ser un JSON válido"))
		return errResponseWritten
	}
	return nil
}

// respondError maps a service/repository error to its HTTP status. Internal
// causes are logged here and never leak into the response body.
func (s *Server) respondError(c *fiber.Ctx, err error) error {
	status := models.StatusForError(err)
	if status == fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "handler error",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, status, err)
}
