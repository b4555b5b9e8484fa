package get_holidays

import "github.com/m04kA/SMC-PickerService/internal/domain"

type HolidayProvider interface {
	Holidays() (domain.HolidaySet, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
