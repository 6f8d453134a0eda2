// Package format содержит чистые функции форматирования значений для
// отображения клиенту: цены в центавос, длительности, даты и время.
// Локаль фиксированная - pt-BR.
package format

import (
	"fmt"
	"strings"
	"time"
)

var weekdaysPtBR = [...]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

var monthsPtBR = [...]string{
	"janeiro",
	"fevereiro",
	"março",
	"abril",
	"maio",
	"junho",
	"julho",
	"agosto",
	"setembro",
	"outubro",
	"novembro",
	"dezembro",
}

// Price форматирует цену в центавос в строку вида "R$ 35,00"
// Нулевая или отрицательная цена отображается как "R$ 0,00"
func Price(cents int64) string {
	if cents <= 0 {
		return "R$ 0,00"
	}

	reais := cents / 100
	rest := cents % 100

	// Разделитель тысяч - точка: 123456789 -> "1.234.567"
	intPart := fmt.Sprintf("%d", reais)
	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	return fmt.Sprintf("R$ %s,%02d", b.String(), rest)
}

// Duration форматирует длительность в минутах: "30min", "1h", "1h30"
func Duration(minutes int) string {
	if minutes <= 0 {
		return "0min"
	}

	if minutes < 60 {
		return fmt.Sprintf("%dmin", minutes)
	}

	hours := minutes / 60
	mins := minutes % 60

	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}

	return fmt.Sprintf("%dh%02d", hours, mins)
}

// Date форматирует дату для отображения: "14/01/2026"
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// Time форматирует время для отображения: "14:30"
func Time(t time.Time) string {
	return t.Format("15:04")
}

// DateFull форматирует дату с днем недели и месяцем прописью:
// "terça-feira, 14 de janeiro"
func DateFull(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s", weekdaysPtBR[t.Weekday()], t.Day(), monthsPtBR[t.Month()-1])
}
