package select_wizard

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// SelectWizardRequest HTTP модель выбора на текущем шаге
// Должно быть заполнено ровно одно из полей
type SelectWizardRequest struct {
	UnitID    *int64  `json:"unitId,omitempty"`
	ServiceID *int64  `json:"serviceId,omitempty"`
	BarberID  *int64  `json:"barberId,omitempty"`
	Date      *string `json:"date,omitempty"` // YYYY-MM-DD
	Time      *string `json:"time,omitempty"` // HH:MM
}

// WizardStateResponse HTTP модель состояния сессии мастера
type WizardStateResponse struct {
	Token         string  `json:"token"`
	Step          int     `json:"step"`
	UnitID        *int64  `json:"unitId,omitempty"`
	ServiceID     *int64  `json:"serviceId,omitempty"`
	BarberID      *int64  `json:"barberId,omitempty"`
	Date          *string `json:"date,omitempty"`
	Time          *string `json:"time,omitempty"`
	Suspended     bool    `json:"suspended"`
	Submitted     bool    `json:"submitted"`
	AppointmentID *int64  `json:"appointmentId,omitempty"`
	Warning       string  `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
// Парсит дату и время, если они переданы
func (r *SelectWizardRequest) ToUseCaseRequest(token string) (*bookingWizard.SelectRequest, error) {
	req := &bookingWizard.SelectRequest{
		Token:     token,
		UnitID:    r.UnitID,
		ServiceID: r.ServiceID,
		BarberID:  r.BarberID,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Time != nil {
		t, err := types.NewTimeStringFromString(*r.Time)
		if err != nil {
			return nil, err
		}
		req.Time = &t
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookingWizard.Response) *WizardStateResponse {
	out := &WizardStateResponse{
		Token:         resp.Token,
		Step:          int(resp.Step),
		UnitID:        resp.UnitID,
		ServiceID:     resp.ServiceID,
		BarberID:      resp.BarberID,
		Suspended:     resp.Suspended,
		Submitted:     resp.Submitted,
		AppointmentID: resp.AppointmentID,
		Warning:       resp.Warning,
	}

	if resp.Date != nil {
		date := resp.Date.Format(domain.DateFormat)
		out.Date = &date
	}
	if resp.Time != nil {
		t := resp.Time.String()
		out.Time = &t
	}

	return out
}
