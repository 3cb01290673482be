package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда исключение для даты не найдено
	ErrOverrideNotFound = errors.New("schedule.repository: day override not found")

	// ErrInvalidWindow возвращается, когда окно в БД не соответствует формату HH:MM-HH:MM
	ErrInvalidWindow = errors.New("schedule.repository: invalid stored window")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
