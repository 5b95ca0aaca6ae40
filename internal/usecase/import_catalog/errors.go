package import_catalog

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном виде продукта или пустом файле
	ErrInvalidInput = errors.New("import_catalog: invalid input data")

	// ErrMalformedFile возвращается, когда тело запроса не читается как CSV
	ErrMalformedFile = errors.New("import_catalog: malformed csv file")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_catalog: internal error")
)
