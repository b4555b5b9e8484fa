package handle_picker_event

import (
	"github.com/m04kA/SMC-PickerService/internal/service/pickers"
)

// PickerRegistry интерфейс реестра экземпляров пикеров
type PickerRegistry interface {
	Instance(id string) (*pickers.Instance, error)
}

// MetricsRecorder интерфейс для записи метрик событий
type MetricsRecorder interface {
	RecordPickerEvent(pickerID, event string, applied bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
