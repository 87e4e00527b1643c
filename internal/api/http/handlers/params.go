package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wavepark/shift-manager/internal/api/dto"
	"github.com/wavepark/shift-manager/internal/repository"
	apperrors "github.com/wavepark/shift-manager/pkg/util/errorutil"
)

func pathID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": raw})
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"reason": err.Error()})
	}
	return nil
}

// shiftWindow reads the optional start and end query parameters.
func shiftWindow(c *fiber.Ctx) (repository.ShiftFilter, error) {
	var filter repository.ShiftFilter
	for key, dst := range map[string]**time.Time{"start": &filter.Start, "end": &filter.End} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		t, err := dto.ParseTimestamp(raw)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid "+key+" filter", map[string]any{key: raw})
		}
		*dst = &t
	}
	return filter, nil
}
