package picker

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("picker.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("picker.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("picker.repository: failed to scan row")

	// ErrInvalidSpec возвращается, когда spec в БД не разбирается
	ErrInvalidSpec = errors.New("picker.repository: invalid picker spec")
)
