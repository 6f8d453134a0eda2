package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{
			name:     "мобильный с маской",
			phone:    "(11) 99999-1111",
			expected: "5511999991111",
		},
		{
			name:     "мобильный без маски",
			phone:    "11999991111",
			expected: "5511999991111",
		},
		{
			name:     "старый формат без девятки",
			phone:    "1133334444",
			expected: "5591133334444",
		},
		{
			name:     "уже с кодом страны",
			phone:    "5511999991111",
			expected: "5511999991111",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhone(tt.phone))
		})
	}
}

func TestLink(t *testing.T) {
	link := Link("(11) 99999-1111", "Olá! Seu horário foi confirmado")

	assert.Contains(t, link, "https://wa.me/5511999991111?text=")
	assert.Contains(t, link, "Ol%C3%A1")
}
