package get_available_slots

import "errors"

var (
	// ErrUnitNotFound возвращается, когда барбершоп не найден
	ErrUnitNotFound = errors.New("unit not found")

	// ErrBarberNotFound возвращается, когда барбер не найден в барбершопе
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
