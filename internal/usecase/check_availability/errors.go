package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Проверка выполняется до любых обращений к БД
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
