package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/format"
	"github.com/m04kA/SMC-BarberBookingService/pkg/whatsapp"
)

// Dispatcher отправляет события в вебхуки N8N
// Пока интеграция не активирована (enabled=false) работает как заглушка:
// логирует события без сетевых запросов. Ошибки доставки не должны
// прерывать основной сценарий - вызывающий код их только логирует
type Dispatcher struct {
	enabled    bool
	baseURL    string
	webhooks   map[string]string
	httpClient *http.Client
	log        Logger
}

// NewDispatcher создает новый экземпляр диспетчера событий N8N
func NewDispatcher(enabled bool, baseURL string, webhooks map[string]string, timeout time.Duration, log Logger) *Dispatcher {
	return &Dispatcher{
		enabled:  enabled,
		baseURL:  baseURL,
		webhooks: webhooks,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Trigger отправляет событие с произвольными данными в соответствующий вебхук
func (d *Dispatcher) Trigger(ctx context.Context, event Event, data map[string]interface{}) error {
	if !d.enabled {
		d.log.Info("[STUB] n8n.Trigger: event=%s", event)
		return nil
	}

	webhookPath, ok := d.webhooks[string(event)]
	if !ok || webhookPath == "" {
		d.log.Warn("n8n.Trigger: no webhook configured for event %s", event)
		return nil
	}

	body, err := json.Marshal(envelope{
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+webhookPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver event %s: %w", event, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("n8n webhook error: event %s, status %d", event, resp.StatusCode)
	}

	return nil
}

// NotifyNewAppointment отправляет уведомление о новой записи
func (d *Dispatcher) NotifyNewAppointment(ctx context.Context, appointment *domain.Appointment) error {
	confirmation := confirmationMessage(appointment)

	return d.Trigger(ctx, EventNewAppointment, map[string]interface{}{
		"appointment_id": appointment.ID,
		"customer_name":  appointment.CustomerName,
		"customer_phone": appointment.CustomerPhone,
		"service_name":   appointment.ServiceName,
		"barber_name":    appointment.BarberName,
		"unit_name":      appointment.UnitName,
		"scheduled_date": appointment.AppointmentDate.Format(domain.DateFormat),
		"scheduled_time": appointment.StartTime.String(),
		// Данные для шаблонов сообщений
		"formatted_date": format.Date(appointment.AppointmentDate),
		"formatted_time": appointment.StartTime.String(),
		"whatsapp_link":  whatsapp.Link(appointment.CustomerPhone, confirmation),
	})
}

// NotifyAppointmentCancelled отправляет уведомление об отмене записи
func (d *Dispatcher) NotifyAppointmentCancelled(ctx context.Context, appointment *domain.Appointment, reason string) error {
	return d.Trigger(ctx, EventAppointmentCancelled, map[string]interface{}{
		"appointment_id":      appointment.ID,
		"customer_name":       appointment.CustomerName,
		"customer_phone":      appointment.CustomerPhone,
		"service_name":        appointment.ServiceName,
		"scheduled_date":      appointment.AppointmentDate.Format(domain.DateFormat),
		"scheduled_time":      appointment.StartTime.String(),
		"cancellation_reason": reason,
	})
}

// NotifyAppointmentCompleted отправляет уведомление о завершении обслуживания
func (d *Dispatcher) NotifyAppointmentCompleted(ctx context.Context, appointment *domain.Appointment) error {
	return d.Trigger(ctx, EventAppointmentCompleted, map[string]interface{}{
		"appointment_id": appointment.ID,
		"customer_name":  appointment.CustomerName,
		"customer_phone": appointment.CustomerPhone,
		"service_name":   appointment.ServiceName,
		"barber_name":    appointment.BarberName,
	})
}

// SendAppointmentReminder отправляет напоминание о предстоящей записи
func (d *Dispatcher) SendAppointmentReminder(ctx context.Context, appointment *domain.Appointment, hoursUntil int) error {
	return d.Trigger(ctx, EventAppointmentReminder, map[string]interface{}{
		"appointment_id": appointment.ID,
		"customer_name":  appointment.CustomerName,
		"customer_phone": appointment.CustomerPhone,
		"hours_until":    hoursUntil,
		"service_name":   appointment.ServiceName,
		"barber_name":    appointment.BarberName,
		"unit_name":      appointment.UnitName,
		"scheduled_date": appointment.AppointmentDate.Format(domain.DateFormat),
		"scheduled_time": appointment.StartTime.String(),
	})
}

// NotifyCustomerCreated отправляет уведомление о регистрации нового клиента
func (d *Dispatcher) NotifyCustomerCreated(ctx context.Context, profile *domain.Profile) error {
	return d.Trigger(ctx, EventCustomerCreated, map[string]interface{}{
		"profile_id": profile.ID,
		"full_name":  profile.FullName,
		"phone":      profile.Phone,
	})
}

// confirmationMessage собирает текст подтверждения для WhatsApp
func confirmationMessage(appointment *domain.Appointment) string {
	return fmt.Sprintf(
		"✂️ *Prime Barber*\n\nOlá %s!\n\nSeu agendamento foi confirmado:\n\n📅 *Data:* %s\n🕐 *Horário:* %s\n💈 *Serviço:* %s\n👤 *Barbeiro:* %s\n📍 *Local:* %s\n\nAté lá! 🙂",
		appointment.CustomerName,
		format.Date(appointment.AppointmentDate),
		appointment.StartTime.String(),
		appointment.ServiceName,
		appointment.BarberName,
		appointment.UnitName,
	)
}
