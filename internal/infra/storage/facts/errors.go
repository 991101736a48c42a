package facts

import "errors"

var (
	// ErrFactsNotFound возвращается, когда факты сессии не найдены или истекли
	ErrFactsNotFound = errors.New("facts.repository: facts not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("facts.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("facts.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("facts.repository: failed to scan row")
)
