package domain

import "strings"

// Locale identifica el idioma de presentacion.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
)

// ParseLocale normaliza un codigo de idioma; cualquier valor desconocido cae en fallback.
func ParseLocale(raw string, fallback Locale) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case LocaleEN:
		return LocaleEN
	case LocaleRU:
		return LocaleRU
	default:
		return fallback
	}
}

// IntPtr devuelve un puntero al entero dado; util para armar SymptomInput.
func IntPtr(v int) *int {
	return &v
}
