package booking_wizard

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек его TTL
	ErrDraftNotFound = errors.New("booking_wizard: draft not found")

	// ErrUnitNotFound возвращается при выборе несуществующего барбершопа
	ErrUnitNotFound = errors.New("booking_wizard: unit not found")

	// ErrServiceNotFound возвращается при выборе услуги, не оказываемой в барбершопе
	ErrServiceNotFound = errors.New("booking_wizard: service not found")

	// ErrBarberNotFound возвращается при выборе барбера, не работающего в барбершопе
	ErrBarberNotFound = errors.New("booking_wizard: barber not found")

	// ErrAlreadySubmitted возвращается при попытке изменить черновик после
	// успешного создания записи - нужен reset для новой сессии
	ErrAlreadySubmitted = errors.New("booking_wizard: draft already submitted")

	// ErrAuthenticationRequired возвращается при подтверждении без
	// аутентификации; черновик при этом сохраняется как приостановленный
	ErrAuthenticationRequired = errors.New("booking_wizard: authentication required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("booking_wizard: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking_wizard: internal error")
)
