package holidaysjp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidaysjp client: internal error")

	// ErrUnavailable возвращается при сетевой ошибке или таймауте
	ErrUnavailable = errors.New("holidaysjp client: source unavailable")

	// ErrInvalidResponse возвращается при неуспешном статусе или некорректном теле ответа
	ErrInvalidResponse = errors.New("holidaysjp client: invalid response")
)
