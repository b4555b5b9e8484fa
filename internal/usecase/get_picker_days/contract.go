package get_picker_days

import (
	"github.com/m04kA/SMC-PickerService/internal/service/pickers"
)

// PickerRegistry интерфейс реестра экземпляров пикеров
type PickerRegistry interface {
	Instance(id string) (*pickers.Instance, error)
}

// MetricsRecorder интерфейс для записи метрик решений по дням
type MetricsRecorder interface {
	RecordDayDecision(pickerID, state string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
