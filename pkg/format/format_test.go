package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "zero", cents: 0, want: "R$ 0,00"},
		{name: "negative", cents: -100, want: "R$ 0,00"},
		{name: "simple", cents: 3500, want: "R$ 35,00"},
		{name: "with cents", cents: 4590, want: "R$ 45,90"},
		{name: "under one real", cents: 99, want: "R$ 0,99"},
		{name: "thousands", cents: 123456, want: "R$ 1.234,56"},
		{name: "millions", cents: 123456789, want: "R$ 1.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.cents))
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "zero", minutes: 0, want: "0min"},
		{name: "under hour", minutes: 30, want: "30min"},
		{name: "exact hour", minutes: 60, want: "1h"},
		{name: "hour and half", minutes: 90, want: "1h30"},
		{name: "two hours five", minutes: 125, want: "2h05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.minutes))
		})
	}
}

func TestDateAndTime(t *testing.T) {
	ts := time.Date(2026, 1, 14, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "14/01/2026", Date(ts))
	assert.Equal(t, "14:30", Time(ts))
}

func TestDateFull(t *testing.T) {
	// 2026-01-14 - среда
	assert.Equal(t, "quarta-feira, 14 de janeiro", DateFull(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)))
	// 2025-06-12 - четверг
	assert.Equal(t, "quinta-feira, 12 de junho", DateFull(time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)))
}
