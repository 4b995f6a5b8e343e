package docstore

import "errors"

var (
	// ErrDocumentNotFound возвращается, когда документ коллекции ещё не сохранялся
	ErrDocumentNotFound = errors.New("docstore: document not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("docstore: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("docstore: failed to execute query")
)
