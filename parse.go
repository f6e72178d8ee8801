package extdatetime

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

// createLayouts Форматы, которые пробует Create до разбора свободного текста.
var createLayouts = []string{
	LayoutDateTime,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	LayoutDate,
}

// parseFormat Разбор строки строго по шаблону Go. Ошибка разбора превращается в ErrCreateFromFormat.
func parseFormat(layout, text string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layout, text, locationOrDefault(loc))
	if err != nil {
		return time.Time{}, errors.WithStack(ErrCreateFromFormat)
	}
	return t, nil
}

// parseText Разбор строки для Create: "now" или пустая строка - текущий момент,
// затем известные форматы, затем разбор свободного текста (jinzhu/now).
func parseText(text string, loc *time.Location) (time.Time, error) {
	loc = locationOrDefault(loc)
	text = strings.TrimSpace(text)
	current := clockNow().In(loc)
	if text == "" || strings.EqualFold(text, "now") {
		return current, nil
	}
	for _, layout := range createLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	t, err := now.With(current).Parse(text)
	if err != nil {
		return time.Time{}, errors.Wrapf(ErrCreate, "%q", text)
	}
	return t, nil
}
