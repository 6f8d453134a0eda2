package domain

import "github.com/m04kA/SMC-BarberBookingService/pkg/types"

// BusinessHours рабочие часы в 24-часовом формате: [Start:00, End:00)
type BusinessHours struct {
	Start int
	End   int
}

// Slot represents a single offered appointment start time on the interval grid
type Slot struct {
	StartTime types.TimeString
	IsPast    bool
	IsBooked  bool
}

// IsAvailable returns true if the slot can be selected
func (s *Slot) IsAvailable() bool {
	return !s.IsPast && !s.IsBooked
}
