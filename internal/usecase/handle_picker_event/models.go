package handle_picker_event

import (
	"time"

	"github.com/m04kA/SMC-PickerService/internal/service/pickers/models"
)

// Request модель события виджета
type Request struct {
	PickerID      string      // ID пикера
	Event         string      // change | close | ready
	SelectedDates []time.Time // Выбранные даты, первая определяет окно времени
	Controls      []string    // ID элементов, присутствующих на странице
}

// Response результат обработки события
type Response = models.EventResult
