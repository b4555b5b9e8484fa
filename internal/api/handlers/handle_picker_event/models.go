package handle_picker_event

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
	handlePickerEvent "github.com/m04kA/SMC-PickerService/internal/usecase/handle_picker_event"
)

// PickerEventRequest HTTP request model
type PickerEventRequest struct {
	Event         string   `json:"event"`
	SelectedDates []string `json:"selectedDates"`
	Controls      []string `json:"controls"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *PickerEventRequest) ToUseCaseRequest(pickerID string, loc *time.Location) (*handlePickerEvent.Request, error) {
	dates := make([]time.Time, 0, len(r.SelectedDates))
	for _, s := range r.SelectedDates {
		date, err := domain.ParseDateKey(s, loc)
		if err != nil {
			return nil, fmt.Errorf("selected date %q: %w", s, err)
		}
		dates = append(dates, date)
	}

	return &handlePickerEvent.Request{
		PickerID:      pickerID,
		Event:         r.Event,
		SelectedDates: dates,
		Controls:      r.Controls,
	}, nil
}
