package get_picker

import "github.com/m04kA/SMC-PickerService/internal/service/pickers"

type PickerRegistry interface {
	Instance(id string) (*pickers.Instance, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
