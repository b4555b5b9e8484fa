package handle_picker_event

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

// validateRequest валидирует входные данные и возвращает тип события
func validateRequest(req *Request) (domain.EventKind, error) {
	if strings.TrimSpace(req.PickerID) == "" {
		return "", fmt.Errorf("%w: pickerID is required", ErrInvalidInput)
	}

	event, err := domain.ParseEventKind(req.Event)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Решения по дням отдает GET /pickers/{id}/days
	if event == domain.EventRender {
		return "", fmt.Errorf("%w: event %q is served by the days endpoint", ErrInvalidInput, event)
	}

	for i, date := range req.SelectedDates {
		if date.IsZero() {
			return "", fmt.Errorf("%w: selected date %d is empty", ErrInvalidInput, i)
		}
	}

	return event, nil
}
