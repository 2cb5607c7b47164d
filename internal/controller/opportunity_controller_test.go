package controller

import (
	"errors"
	"testing"

	"estate-crm-be/pkg/board"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateBoardError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"card not found", board.ErrCardNotFound, fiber.StatusNotFound},
		{"unknown target", board.ErrUnknownTarget, fiber.StatusBadRequest},
		{"stale move", board.ErrStaleMove, fiber.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateBoardError(tt.err)

			var ferr *fiber.Error
			require.True(t, errors.As(got, &ferr))
			assert.Equal(t, tt.wantCode, ferr.Code)
		})
	}
}

func TestTranslateBoardErrorPassesThroughUnknownErrors(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, translateBoardError(plain))
}
