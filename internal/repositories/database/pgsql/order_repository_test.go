package pgsql

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapOrderWriteError(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		target error
		status int
	}{
		{"unique violation", pgUniqueViolation, apperrors.ErrDuplicate, http.StatusConflict},
		{"missing reference", pgForeignKeyViolation, apperrors.ErrValidation, http.StatusBadRequest},
		{"value too long", pgStringTooLong, apperrors.ErrValidation, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cause := fmt.Errorf("batch exec: %w", &pgconn.PgError{Code: tt.code})

			err := mapOrderWriteError(cause, "order graph WO-1")

			assert.ErrorIs(t, err, tt.target)
			var appErr *apperrors.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tt.status, appErr.Code)
			}
		})
	}
}

func TestMapOrderWriteError_UnknownFailureIsInternal(t *testing.T) {
	err := mapOrderWriteError(errors.New("connection reset"), "order WO-1")

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
}
