package get_picker_days

import "errors"

var (
	// ErrPickerNotFound возвращается, когда пикер не найден
	ErrPickerNotFound = errors.New("picker not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooLarge возвращается, когда диапазон дат превышает допустимый
	ErrRangeTooLarge = errors.New("date range is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
