package catalog

import "errors"

var (
	// ErrProductNotFound возвращается, когда продукт не найден
	ErrProductNotFound = errors.New("catalog: product not found")

	// ErrDuplicateName возвращается, когда название продукта уже занято
	// (уникальность проверяется по всем видам продуктов сразу)
	ErrDuplicateName = errors.New("catalog: product name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
