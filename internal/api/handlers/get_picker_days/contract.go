package get_picker_days

import (
	"context"

	getPickerDays "github.com/m04kA/SMC-PickerService/internal/usecase/get_picker_days"
)

type GetPickerDaysUseCase interface {
	Execute(ctx context.Context, req *getPickerDays.Request) (*getPickerDays.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
