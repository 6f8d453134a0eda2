package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// FormatPhone приводит бразильский номер телефона к формату WhatsApp API:
// только цифры, с кодом страны 55
func FormatPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch len(digits) {
	case 11:
		return "55" + digits
	case 10:
		// Старый формат мобильного без девятки
		return "559" + digits
	default:
		return digits
	}
}

// Link собирает ссылку wa.me с предзаполненным сообщением
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", FormatPhone(phone), url.QueryEscape(message))
}
