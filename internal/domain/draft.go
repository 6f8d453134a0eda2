package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// WizardStep шаг мастера бронирования
type WizardStep int

const (
	StepSelectUnit     WizardStep = 1
	StepSelectService  WizardStep = 2
	StepSelectBarber   WizardStep = 3
	StepSelectDateTime WizardStep = 4
	StepConfirm        WizardStep = 5
)

// BookingDraft черновик бронирования - состояние активной сессии мастера
// Живет только в short-lived хранилище, владеет им единственная сессия.
// Nil-поля означают, что выбор на соответствующем шаге еще не сделан
type BookingDraft struct {
	Token     string // uuid сессии мастера
	Step      WizardStep
	UnitID    *int64
	ServiceID *int64
	BarberID  *int64
	Date      *time.Time
	Time      *types.TimeString

	// Suspended выставляется при попытке подтверждения без аутентификации:
	// черновик сохраняется и ждет возврата пользователя после входа
	Suspended bool

	// Submitted выставляется после успешного создания записи:
	// дальнейшие изменения заблокированы до reset
	Submitted     bool
	AppointmentID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingDraft создает пустой черновик на первом шаге
func NewBookingDraft(token string, now time.Time) *BookingDraft {
	return &BookingDraft{
		Token:     token,
		Step:      StepSelectUnit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reset возвращает черновик к пустому состоянию на первом шаге
// Идемпотентен: повторный вызов дает тот же результат
func (d *BookingDraft) Reset(now time.Time) {
	d.Step = StepSelectUnit
	d.UnitID = nil
	d.ServiceID = nil
	d.BarberID = nil
	d.Date = nil
	d.Time = nil
	d.Suspended = false
	d.Submitted = false
	d.AppointmentID = nil
	d.UpdatedAt = now
}

// ClearFromService сбрасывает выбор услуги и все, что ниже по потоку
// Вызывается при смене юнита: список услуг и барберов зависит от юнита
func (d *BookingDraft) ClearFromService() {
	d.ServiceID = nil
	d.ClearFromBarber()
}

// ClearFromBarber сбрасывает выбор барбера и дату/время
func (d *BookingDraft) ClearFromBarber() {
	d.BarberID = nil
	d.ClearFromDate()
}

// ClearFromDate сбрасывает дату и время
func (d *BookingDraft) ClearFromDate() {
	d.Date = nil
	d.Time = nil
}

// StepGuardSatisfied проверяет выполнение условия перехода вперед с шага step
func (d *BookingDraft) StepGuardSatisfied(step WizardStep) bool {
	switch step {
	case StepSelectUnit:
		return d.UnitID != nil
	case StepSelectService:
		return d.ServiceID != nil
	case StepSelectBarber:
		return d.BarberID != nil
	case StepSelectDateTime:
		return d.Date != nil && d.Time != nil
	case StepConfirm:
		return d.IsComplete()
	default:
		return false
	}
}

// IsComplete возвращает true, когда все пять выборов сделаны
func (d *BookingDraft) IsComplete() bool {
	return d.UnitID != nil && d.ServiceID != nil && d.BarberID != nil &&
		d.Date != nil && d.Time != nil
}
