package models

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessages(t *testing.T) {
	assert.Equal(t, "Usuario con id 7 no encontrado", NewNotFoundError("Usuario", 7).Error())
	assert.Equal(t, "El campo 'email' es obligatorio", NewMissingFieldError("email").Error())
	assert.Equal(t, "Error interno del servidor: boom", NewInternalError(errors.New("boom")).Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFoundError("Planeta", 1), fiber.StatusNotFound},
		{"validation", NewValidationError("mal"), fiber.StatusBadRequest},
		{"missing field", NewMissingFieldError("name"), fiber.StatusUnprocessableEntity},
		{"conflict", NewConflictError("ya existe"), fiber.StatusConflict},
		{"internal", NewInternalError(errors.New("boom")), fiber.StatusInternalServerError},
		{"plain error", errors.New("anything"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}
