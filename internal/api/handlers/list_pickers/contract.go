package list_pickers

import "github.com/m04kA/SMC-PickerService/internal/service/pickers"

type PickerRegistry interface {
	Instances() []*pickers.Instance
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
