// Package imageurl отвечает за построение публичных URL изображений,
// лежащих в object storage бэкенда, с fallback на сгенерированный
// SVG-плейсхолдер, когда изображение отсутствует.
package imageurl

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind тип изображения - влияет на плейсхолдер
type Kind string

const (
	KindUnit   Kind = "unit"
	KindBarber Kind = "barber"
)

// Resolver строит публичные URL изображений в бакете object storage
type Resolver struct {
	publicBaseURL string
	bucket        string
}

// NewResolver создает резолвер
// publicBaseURL - базовый публичный URL storage (например,
// https://xxx.supabase.co/storage/v1/object/public), bucket - имя бакета
func NewResolver(publicBaseURL, bucket string) *Resolver {
	return &Resolver{
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		bucket:        bucket,
	}
}

// Resolve возвращает публичный URL изображения по пути в бакете
// Абсолютные URL возвращаются как есть; для пустого пути возвращается
// плейсхолдер соответствующего типа
func (r *Resolver) Resolve(path string, kind Kind) string {
	if path == "" {
		return Placeholder(kind)
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return fmt.Sprintf("%s/%s/%s", r.publicBaseURL, r.bucket, strings.TrimLeft(path, "/"))
}

// Placeholder возвращает SVG data-URL с глифом для отсутствующего изображения
func Placeholder(kind Kind) string {
	color := "#1a1a1a"
	glyph := "🏬"
	if kind == KindBarber {
		color = "#252525"
		glyph = "✂"
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300" viewBox="0 0 400 300">`+
			`<rect fill="%s" width="400" height="300"/>`+
			`<text x="200" y="150" font-size="48" text-anchor="middle" dominant-baseline="middle">%s</text>`+
			`</svg>`,
		color, glyph,
	)

	return "data:image/svg+xml," + url.PathEscape(svg)
}
