package next_wizard

import (
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
)

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
