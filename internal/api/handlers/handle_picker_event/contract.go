package handle_picker_event

import (
	"context"

	handlePickerEvent "github.com/m04kA/SMC-PickerService/internal/usecase/handle_picker_event"
)

type HandlePickerEventUseCase interface {
	Execute(ctx context.Context, req *handlePickerEvent.Request) (*handlePickerEvent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
