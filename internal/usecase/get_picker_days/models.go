package get_picker_days

import (
	"time"

	"github.com/m04kA/SMC-PickerService/internal/domain"
)

// Request модель запроса решений по дням
type Request struct {
	PickerID string    // ID пикера (точка монтирования виджета)
	From     time.Time // Первый день диапазона
	To       time.Time // Последний день диапазона (включительно)
}

// Response модель ответа со списком решений
type Response struct {
	PickerID string
	From     domain.DateKey
	To       domain.DateKey
	Days     []domain.DayState
}
