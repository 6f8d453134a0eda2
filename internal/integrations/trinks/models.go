package trinks

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SyncResult результат синхронизации записи с Trinks
type SyncResult struct {
	Success  bool   `json:"success"`
	TrinksID string `json:"trinks_id"`
}

// AvailabilityWindow окно доступности мастера в Trinks
type AvailabilityWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// appointmentPayload тело запроса POST /appointments в API Trinks
type appointmentPayload struct {
	EstablishmentID string          `json:"establishment_id"`
	ProfessionalID  string          `json:"professional_id"`
	ServiceID       string          `json:"service_id"`
	Customer        customerPayload `json:"customer"`
	ScheduledAt     string          `json:"scheduled_at"`
	Notes           string          `json:"notes"`
}

type customerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type availabilityResponse struct {
	AvailableSlots []AvailabilityWindow `json:"available_slots"`
}
