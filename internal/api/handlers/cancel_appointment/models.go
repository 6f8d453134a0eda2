package cancel_appointment

// CancelAppointmentRequest HTTP модель отмены записи
// Причина опциональна и передается в уведомления
type CancelAppointmentRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelAppointmentResponse подтверждение отмены
type CancelAppointmentResponse struct {
	Message string `json:"message"`
}
