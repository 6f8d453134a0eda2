package create_booking

import "errors"

var (
	// ErrUnitNotFound возвращается, когда барбершоп не найден
	ErrUnitNotFound = errors.New("create_booking: unit not found")

	// ErrServiceNotFound возвращается, когда услуга не оказывается в барбершопе
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrBarberNotFound возвращается, когда барбер не работает в барбершопе
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrCustomerNotFound возвращается, когда профиль клиента не найден
	ErrCustomerNotFound = errors.New("create_booking: customer profile not found")

	// ErrUnitClosed возвращается, когда барбершоп закрыт в указанную дату
	ErrUnitClosed = errors.New("create_booking: unit is closed on this date")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid appointment date")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	// или выходит за рабочие часы
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTimeInPast возвращается при попытке записи на прошедшее время
	ErrTimeInPast = errors.New("create_booking: time slot is in the past")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
