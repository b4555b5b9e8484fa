package get_picker_days

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PickerID) == "" {
		return fmt.Errorf("%w: pickerID is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if req.From.After(req.To) {
		return fmt.Errorf("%w: from %s is after to %s", ErrInvalidInput,
			domain.FormatDate(req.From), domain.FormatDate(req.To))
	}

	return nil
}

// validateSpan проверяет, что диапазон не длиннее maxSpan
// maxSpan = 0 снимает ограничение, неполные сутки округляются вверх
func validateSpan(from, to time.Time, maxSpan time.Duration) error {
	if maxSpan <= 0 {
		return nil
	}

	days := domain.DaysBetween(from, to) + 1
	const day = 24 * time.Hour
	maxDays := int((maxSpan + day - 1) / day)
	if days > maxDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLarge, days, maxDays)
	}

	return nil
}
