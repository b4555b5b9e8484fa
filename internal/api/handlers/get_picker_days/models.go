package get_picker_days

import (
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
	getPickerDays "github.com/m04kA/SMC-PickerService/internal/usecase/get_picker_days"
)

// PickerDaysResponse HTTP response model
type PickerDaysResponse struct {
	PickerID string `json:"pickerId"`
	From     string `json:"from"`
	To       string `json:"to"`
	Days     []Day  `json:"days"`
}

// Day решение об отрисовке одного дня
type Day struct {
	Date        string `json:"date"`
	State       string `json:"state"`
	Selectable  bool   `json:"selectable"`
	InRange     bool   `json:"inRange"`
	Disabled    bool   `json:"disabled"`
	Holiday     bool   `json:"holiday"`
	HolidayName string `json:"holidayName,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getPickerDays.Response) *PickerDaysResponse {
	days := make([]Day, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = Day{
			Date:        day.Date.String(),
			State:       day.State(),
			Selectable:  day.Selectable(),
			InRange:     day.InRange,
			Disabled:    day.Disabled,
			Holiday:     day.Holiday,
			HolidayName: day.HolidayName,
		}
	}

	return &PickerDaysResponse{
		PickerID: resp.PickerID,
		From:     resp.From.String(),
		To:       resp.To.String(),
		Days:     days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(pickerID, fromStr, toStr string, loc *time.Location) (*getPickerDays.Request, error) {
	from, err := domain.ParseDateKey(fromStr, loc)
	if err != nil {
		return nil, err
	}

	to, err := domain.ParseDateKey(toStr, loc)
	if err != nil {
		return nil, err
	}

	return &getPickerDays.Request{
		PickerID: pickerID,
		From:     from,
		To:       to,
	}, nil
}
