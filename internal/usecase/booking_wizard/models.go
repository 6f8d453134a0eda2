package booking_wizard

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// Предупреждения мастера: нарушение условия шага не меняет состояние,
// клиенту возвращается текущее состояние и ровно одно предупреждение
const (
	WarningSelectUnit      = "Выберите барбершоп, чтобы продолжить"
	WarningSelectService   = "Выберите услугу, чтобы продолжить"
	WarningSelectBarber    = "Выберите барбера, чтобы продолжить"
	WarningSelectDateTime  = "Выберите дату и время, чтобы продолжить"
	WarningSelectDateFirst = "Сначала выберите дату"
	WarningDateUnavailable = "Барбершоп закрыт в выбранную дату"
	WarningIncompleteDraft = "Заполните все шаги, чтобы подтвердить запись"
)

// SelectRequest модель запроса выбора на текущем шаге
// Должно быть заполнено ровно одно из полей выбора
type SelectRequest struct {
	Token     string
	UnitID    *int64
	ServiceID *int64
	BarberID  *int64
	Date      *time.Time
	Time      *types.TimeString
}

// ConfirmRequest модель запроса подтверждения записи
type ConfirmRequest struct {
	Token string
	// CustomerID пуст для неаутентифицированного вызова - мастер
	// приостанавливается до входа пользователя
	CustomerID string
}

// Response снимок состояния мастера после операции
type Response struct {
	Token     string
	Step      domain.WizardStep
	UnitID    *int64
	ServiceID *int64
	BarberID  *int64
	Date      *time.Time
	Time      *types.TimeString
	Suspended bool
	Submitted bool

	// AppointmentID заполняется после успешного подтверждения
	AppointmentID *int64

	// Warning непустой, когда операция отклонена условием шага;
	// состояние при этом не изменилось
	Warning string
}

// newResponse собирает снимок состояния из черновика
func newResponse(d *domain.BookingDraft, warning string) *Response {
	return &Response{
		Token:         d.Token,
		Step:          d.Step,
		UnitID:        d.UnitID,
		ServiceID:     d.ServiceID,
		BarberID:      d.BarberID,
		Date:          d.Date,
		Time:          d.Time,
		Suspended:     d.Suspended,
		Submitted:     d.Submitted,
		AppointmentID: d.AppointmentID,
		Warning:       warning,
	}
}
