package trinks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// Client клиент системы управления Trinks
// Пока интеграция не активирована (enabled=false) работает как заглушка:
// логирует вызовы и возвращает фиктивный успешный результат,
// не выполняя сетевых запросов
type Client struct {
	enabled         bool
	baseURL         string
	apiToken        string
	establishmentID string
	httpClient      *http.Client
	log             Logger
}

// NewClient создает новый экземпляр клиента Trinks
func NewClient(enabled bool, baseURL, apiToken, establishmentID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		enabled:         enabled,
		baseURL:         baseURL,
		apiToken:        apiToken,
		establishmentID: establishmentID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled возвращает true если интеграция активирована
func (c *Client) Enabled() bool {
	return c.enabled
}

// SyncAppointment синхронизирует локальную запись с Trinks
func (c *Client) SyncAppointment(ctx context.Context, appointment *domain.Appointment) (*SyncResult, error) {
	if !c.enabled {
		c.log.Info("[STUB] trinks.SyncAppointment: appointmentID=%d, barberID=%d, serviceID=%d",
			appointment.ID, appointment.BarberID, appointment.ServiceID)
		return &SyncResult{Success: true, TrinksID: "STUB_ID"}, nil
	}

	startsAt, err := appointment.StartsAt()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve appointment start: %w", err)
	}

	payload := appointmentPayload{
		EstablishmentID: c.establishmentID,
		ProfessionalID:  c.MapBarberID(appointment.BarberID),
		ServiceID:       c.MapServiceID(appointment.ServiceID),
		Customer: customerPayload{
			Name:  appointment.CustomerName,
			Phone: appointment.CustomerPhone,
		},
		ScheduledAt: startsAt.Format(time.RFC3339),
		Notes:       fmt.Sprintf("Agendamento via Prime Barber App - ID: %d", appointment.ID),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.post(ctx, "/appointments", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("trinks API error: status %d", resp.StatusCode)
	}

	var result SyncResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// CancelAppointment отменяет запись в Trinks по внешнему идентификатору
func (c *Client) CancelAppointment(ctx context.Context, trinksAppointmentID string) error {
	if !c.enabled {
		c.log.Info("[STUB] trinks.CancelAppointment: trinksID=%s", trinksAppointmentID)
		return nil
	}

	resp, err := c.post(ctx, fmt.Sprintf("/appointments/%s/cancel", trinksAppointmentID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("trinks API error: status %d", resp.StatusCode)
	}

	return nil
}

// GetAvailability запрашивает окна доступности мастера в Trinks
func (c *Client) GetAvailability(ctx context.Context, professionalID string, date time.Time) ([]AvailabilityWindow, error) {
	if !c.enabled {
		c.log.Info("[STUB] trinks.GetAvailability: professionalID=%s, date=%s",
			professionalID, date.Format(domain.DateFormat))
		return []AvailabilityWindow{
			{Start: "09:00", End: "09:30"},
			{Start: "10:00", End: "10:30"},
			{Start: "14:00", End: "14:30"},
		}, nil
	}

	url := fmt.Sprintf("%s/professionals/%s/availability?date=%s",
		c.baseURL, professionalID, date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("trinks API error: status %d", resp.StatusCode)
	}

	var result availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.AvailableSlots, nil
}

// MapBarberID переводит локальный ID мастера в ID Trinks
// Таблица соответствий пока пуста, поэтому возвращается локальный ID
func (c *Client) MapBarberID(localBarberID int64) string {
	return strconv.FormatInt(localBarberID, 10)
}

// MapServiceID переводит локальный ID услуги в ID Trinks
func (c *Client) MapServiceID(localServiceID int64) string {
	return strconv.FormatInt(localServiceID, 10)
}

func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	return resp, nil
}
