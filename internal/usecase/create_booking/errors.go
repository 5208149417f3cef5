package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("create_booking: facility not found")

	// ErrCourtNotFound возвращается, когда корт не найден или не принадлежит площадке
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с существующим активным бронированием (обнаружено при проверке или на коммите)
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных,
	// запрос отклоняется до любых обращений к БД
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
