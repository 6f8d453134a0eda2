package n8n

// Event имя события автоматизации
// Каждому событию в конфигурации соответствует путь вебхука
type Event string

const (
	EventNewAppointment       Event = "newAppointment"
	EventAppointmentCancelled Event = "appointmentCancelled"
	EventAppointmentCompleted Event = "appointmentCompleted"
	EventAppointmentReminder  Event = "appointmentReminder"
	EventCustomerCreated      Event = "customerCreated"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// envelope конверт события, отправляемый в вебхук
type envelope struct {
	Event     Event                  `json:"event"`
	Timestamp string                 `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}
