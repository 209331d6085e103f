// Package report renders workout summaries as one-line messages.
package report

import (
	"alcyxob/fitness-tracker/internal/domain"
	"errors"
	"fmt"
	"strings"
)

// Supported locales.
const (
	LocaleEN = "en"
	LocaleRU = "ru"
)

var ErrUnknownLocale = errors.New("unknown report locale")

// Every numeric field is printed with exactly three decimals.
var templates = map[string]string{
	LocaleEN: "Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg. speed: %.3f km/h; Calories burned: %.3f.",
	LocaleRU: "Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
}

// kindLabels overrides the printed kind name per locale.
var kindLabels = map[string]map[domain.Kind]string{
	LocaleRU: {domain.KindWalking: "SportsWalking"},
}

// Reporter formats summaries using the template of a single locale.
type Reporter struct {
	locale   string
	template string
	labels   map[domain.Kind]string
}

// NewReporter returns a Reporter for locale. An empty locale means LocaleEN.
func NewReporter(locale string) (*Reporter, error) {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if locale == "" {
		locale = LocaleEN
	}
	tmpl, ok := templates[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	return &Reporter{locale: locale, template: tmpl, labels: kindLabels[locale]}, nil
}

// Locale reports which template the Reporter uses.
func (r *Reporter) Locale() string {
	return r.locale
}

// Render formats s as a single line without a trailing newline.
func (r *Reporter) Render(s domain.Summary) string {
	return fmt.Sprintf(r.template, r.kindLabel(s.Kind), s.Duration, s.Distance, s.Speed, s.Calories)
}

func (r *Reporter) kindLabel(kind domain.Kind) string {
	if label, ok := r.labels[kind]; ok {
		return label
	}
	return string(kind)
}
