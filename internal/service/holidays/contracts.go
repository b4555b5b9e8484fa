package holidays

import (
	"context"

	"github.com/m04kA/SMC-PickerService/internal/integrations/holidaysjp"
)

// HolidayClient интерфейс клиента источника праздников
type HolidayClient interface {
	GetHolidays(ctx context.Context, year int) (holidaysjp.YearResponse, error)
}

// MetricsRecorder интерфейс для записи метрик загрузки
type MetricsRecorder interface {
	RecordHolidayFetch(success bool, size int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
