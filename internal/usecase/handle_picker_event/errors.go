package handle_picker_event

import "errors"

var (
	// ErrPickerNotFound возвращается, когда пикер не найден
	ErrPickerNotFound = errors.New("picker not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
