package service

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

// mapLookupError turns a missing row into NotFound for resource and any
// other failure into the generic mapping.
func mapLookupError(err error, resource string, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, map[string]any{"id": id})
	}
	return apperrors.MapError(err)
}

// fieldErrors collects per-field validation messages.
type fieldErrors map[string]any

func (f fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "is required"
	}
}

func (f fieldErrors) err(message string) error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError(message, f)
}
